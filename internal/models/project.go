package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project types accepted by the admin API.
const (
	ProjectTypeBranding = "branding"
	ProjectTypeSocial   = "social"
	ProjectTypeUIUX     = "ui-ux"
	ProjectTypeWebDev   = "web-dev"
	ProjectTypePrint    = "print"
)

var ProjectTypes = []string{
	ProjectTypeBranding,
	ProjectTypeSocial,
	ProjectTypeUIUX,
	ProjectTypeWebDev,
	ProjectTypePrint,
}

// ProjectFields is the canonical, normalized shape of a case-study project.
type ProjectFields struct {
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	Excerpt       string         `db:"excerpt" json:"excerpt"`
	Thumb         string         `db:"thumb" json:"thumb"`
	Video         *string        `db:"video" json:"video"`
	Roles         pq.StringArray `db:"roles" json:"roles"`
	Tools         pq.StringArray `db:"tools" json:"tools"`
	Type          string         `db:"type" json:"type"`
	Featured      bool           `db:"featured" json:"featured"`
	Alt           *string        `db:"alt" json:"alt"`
	Credits       *string        `db:"credits" json:"credits"`
	Problem       *string        `db:"problem" json:"problem"`
	Solution      *string        `db:"solution" json:"solution"`
	Approach      *string        `db:"approach" json:"approach"`
	Outcome       *string        `db:"outcome" json:"outcome"`
	Year          *string        `db:"year" json:"year"`
	Client        *string        `db:"client" json:"client"`
	MobileHeroSrc *string        `db:"mobile_hero_src" json:"mobileHeroSrc"`
	Gallery       Gallery        `db:"gallery" json:"gallery"`
	Highlights    pq.StringArray `db:"highlights" json:"highlights"`
	Deliverables  pq.StringArray `db:"deliverables" json:"deliverables"`
	Process       JSONB          `db:"process" json:"process"`
}

type Project struct {
	ID uuid.UUID `db:"id" json:"id"`
	ProjectFields
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
