package store

import (
	"time"

	"fieldops/domain/ingest"
)

// DefaultStatus is assumed for stores whose source row carries no status
const DefaultStatus = "ACTIVE"

// Canonical field names for the store import target. These double as the
// database column names.
const (
	FieldOracleCCID   = "oracle_ccid"
	FieldRegion       = "region"
	FieldCity         = "city"
	FieldMall         = "mall"
	FieldDivision     = "division"
	FieldBrand        = "brand"
	FieldStoreName    = "store_name"
	FieldFMSupervisor = "fm_supervisor"
	FieldFMManager    = "fm_manager"
	FieldSqm          = "sqm"
	FieldStoreStatus  = "store_status"
	FieldStoreType    = "store_type"
	FieldOpeningDate  = "opening_date"
)

// Store is the canonical master-data record for one retail location,
// upserted against its Oracle CCID.
type Store struct {
	OracleCCID   string     `db:"oracle_ccid" json:"oracle_ccid"`
	Region       string     `db:"region" json:"region"`
	City         string     `db:"city" json:"city"`
	Mall         string     `db:"mall" json:"mall"`
	Division     string     `db:"division" json:"division"`
	Brand        string     `db:"brand" json:"brand"`
	StoreName    string     `db:"store_name" json:"store_name"`
	FMSupervisor string     `db:"fm_supervisor" json:"fm_supervisor"`
	FMManager    string     `db:"fm_manager" json:"fm_manager"`
	Sqm          float64    `db:"sqm" json:"sqm"`
	StoreStatus  string     `db:"store_status" json:"store_status"`
	StoreType    string     `db:"store_type" json:"store_type"`
	OpeningDate  *time.Time `db:"opening_date" json:"opening_date"`
}

// Aliases lists the accepted raw header spellings per canonical field,
// in match-priority order.
var Aliases = ingest.AliasTable{
	FieldOracleCCID:   {"oracle ccid", "ccid", "oracle cc id", "store ccid"},
	FieldRegion:       {"region"},
	FieldCity:         {"city"},
	FieldMall:         {"mall", "location"},
	FieldDivision:     {"division"},
	FieldBrand:        {"brand"},
	FieldStoreName:    {"store name", "name", "store"},
	FieldFMSupervisor: {"fm supervisor", "supervisor"},
	FieldFMManager:    {"fm manager", "manager"},
	FieldSqm:          {"sqm", "area sqm", "area"},
	FieldStoreStatus:  {"store status", "status"},
	FieldStoreType:    {"store type", "type"},
	FieldOpeningDate:  {"opening date", "open date", "opening"},
}

// Anchor marks a row as the header when it names the CCID column outright,
// or names the brand column on a row wide enough to be real headers rather
// than a narrow label row.
var Anchor = ingest.AnchorRule{
	Mode:       ingest.AnchorKeyOrWideSupport,
	Key:        Aliases[FieldOracleCCID],
	Support:    Aliases[FieldBrand],
	WideRowMin: 5,
	Label:      "ccid/brand",
}

// UpdatableFields are overwritten when an upload hits an existing CCID.
// The natural key itself is never updated.
var UpdatableFields = []string{
	FieldRegion, FieldCity, FieldMall, FieldDivision, FieldBrand,
	FieldStoreName, FieldFMSupervisor, FieldFMManager, FieldSqm,
	FieldStoreStatus, FieldStoreType, FieldOpeningDate,
}

// FromRow builds a canonical store record from one mapped data row
func FromRow(r ingest.Row) Store {
	return Store{
		OracleCCID:   r.Text(FieldOracleCCID),
		Region:       r.Text(FieldRegion),
		City:         r.Text(FieldCity),
		Mall:         r.Text(FieldMall),
		Division:     r.Text(FieldDivision),
		Brand:        r.Text(FieldBrand),
		StoreName:    r.Text(FieldStoreName),
		FMSupervisor: r.Text(FieldFMSupervisor),
		FMManager:    r.Text(FieldFMManager),
		Sqm:          r.Number(FieldSqm),
		StoreStatus:  ingest.TrimOrDefault(r.Text(FieldStoreStatus), DefaultStatus),
		StoreType:    r.Text(FieldStoreType),
		OpeningDate:  r.Date(FieldOpeningDate),
	}
}
