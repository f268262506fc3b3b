package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Site-wide singleton documents, keyed by _id in the globals collection.
const (
	GlobalHeader = "header"
	GlobalFooter = "footer"
)

// MaxNavItems caps the header navigation.
const MaxNavItems = 8

// Link is a labelled link to an internal path or an external URL.
type Link struct {
	Label  string `bson:"label" json:"label"`
	URL    string `bson:"url" json:"url"`
	NewTab bool   `bson:"new_tab,omitempty" json:"new_tab,omitempty"`
}

// Header is the site header global.
type Header struct {
	NavItems []Link `bson:"nav_items,omitempty" json:"nav_items"`
}

// Footer is the site footer global.
type Footer struct {
	Subscribe   FooterSubscribe `bson:"subscribe" json:"subscribe"`
	LinkGroups  []LinkGroup     `bson:"link_groups,omitempty" json:"link_groups"`
	SocialLinks []SocialLink    `bson:"social_links,omitempty" json:"social_links"`
	Copyright   string          `bson:"copyright,omitempty" json:"copyright,omitempty"`
}

// FooterSubscribe controls the newsletter block in the footer.
type FooterSubscribe struct {
	Slogan        string `bson:"slogan,omitempty" json:"slogan,omitempty"`
	ShowSubscribe bool   `bson:"show_subscribe" json:"show_subscribe"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Header string `bson:"header,omitempty" json:"header,omitempty"`
	Links  []Link `bson:"links" json:"links"`
}

// SocialLink points at a social profile. IconID references a media document.
type SocialLink struct {
	Label  string              `bson:"label" json:"label"`
	URL    string              `bson:"url" json:"url"`
	IconID *primitive.ObjectID `bson:"icon_id,omitempty" json:"icon_id,omitempty"`
}

// DefaultFooter is served until an editor saves the footer.
func DefaultFooter() Footer {
	return Footer{Subscribe: FooterSubscribe{ShowSubscribe: true}}
}
