package models

import "time"

// BillModel is a legislative bill ingested from the congress.gov API.
// Rows are created by the ingestion job and are immutable afterwards except
// for the cached summary/original text columns.
type BillModel struct {
	Base
	Title        string      `json:"title"        gorm:"type:varchar(600);not null"`
	Action       string      `json:"action"       gorm:"type:varchar(400)"`
	ActionDate   time.Time   `json:"action_date"`
	Description  string      `json:"description"  gorm:"type:varchar(400)"`
	Congress     int         `json:"congress"     gorm:"index:idx_bill_locator"`
	BillType     string      `json:"bill_type"    gorm:"type:varchar(5);index:idx_bill_locator"`
	BillNumber   string      `json:"bill_number"  gorm:"type:varchar(10);index:idx_bill_locator"`
	URL          string      `json:"url"          gorm:"type:text"`
	Summary      *string     `json:"summary"      gorm:"type:text"`
	OriginalText *string     `json:"-"            gorm:"type:longtext"`
	Cosponsors   []Cosponsor `json:"cosponsors,omitempty" gorm:"many2many:bill_cosponsors"`
}

func (BillModel) TableName() string { return "bills" }

// Cosponsor is a congressional member, keyed by bioguide id.
type Cosponsor struct {
	Base
	BioguideID          string    `json:"bioguide_id" gorm:"type:varchar(20);uniqueIndex;not null"`
	FirstName           string    `json:"first_name"  gorm:"type:varchar(100)"`
	MiddleName          string    `json:"middle_name" gorm:"type:varchar(100)"`
	LastName            string    `json:"last_name"   gorm:"type:varchar(100)"`
	FullName            string    `json:"full_name"   gorm:"type:varchar(255)"`
	Party               string    `json:"party"       gorm:"type:varchar(10)"`
	State               string    `json:"state"       gorm:"type:varchar(5)"`
	District            *int      `json:"district"`
	IsOriginalCosponsor bool      `json:"is_original_cosponsor"`
	SponsorshipDate     time.Time `json:"sponsorship_date"`
	URL                 string    `json:"url"         gorm:"type:text"`
	ImageURL            string    `json:"image_url"   gorm:"type:text"`
}

func (Cosponsor) TableName() string { return "cosponsors" }
