package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// importGuide documents the spreadsheet formats the importer accepts. Served
// rendered so operators can fix a rejected file without asking engineering.
const importGuide = `# Master-data import guide

Upload a CSV or XLSX export to ` + "`POST /api/import/stores`" + ` or
` + "`POST /api/import/pricelist`" + ` (multipart field ` + "`file`" + `).

The importer tolerates title rows above the header, any column order,
mixed delimiters (comma, semicolon, tab) and locale-formatted numbers.
Column headers are matched case- and punctuation-insensitively.

## Store import

The header row must name the **Oracle CCID** column (or a Brand column on a
full-width header row). Recognized columns:

| Column | Accepted headers |
|---|---|
| oracle_ccid | Oracle CCID, CCID, Store CCID |
| region | Region |
| city | City |
| mall | Mall, Location |
| division | Division |
| brand | Brand |
| store_name | Store Name, Name, Store |
| fm_supervisor | FM Supervisor, Supervisor |
| fm_manager | FM Manager, Manager |
| sqm | SQM, Area SQM, Area |
| store_status | Store Status, Status (defaults to ACTIVE) |
| store_type | Store Type, Type |
| opening_date | Opening Date, Open Date (MM/DD/YYYY, DD-MMM-YYYY or YYYY-MM-DD) |

## Price list import

The header row must name both the **Code** and the **Description** column.
Recognized columns:

| Column | Accepted headers |
|---|---|
| code | Code, Item Code, Price Code |
| type | Type, Category |
| description | Description, Item Description, Works Description |
| unit | Unit, UOM, Unit of Measure |
| material_price | Material Price, Material, Material Cost, Supply Price |
| labor_price | Labor Price, Labour Price, Labor, Installation Price |
| total_price | Total Price, Total, Unit Price (defaults to material + labor) |
| remarks | Remarks, Remark |
| comments | Comments, Comment, Notes |

Rows without a value in the key column are skipped as blank or footer rows.
Unparsable prices become 0 and unparsable dates become empty; ` + "`#N/A`" + `
cells are treated as empty. Re-uploading the same file is safe: records are
matched on their key and updated in place.
`

// handleImportHelp renders the import guide to HTML
func (s *Server) handleImportHelp(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	page := markdown.ToHTML([]byte(importGuide), p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
