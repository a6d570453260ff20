// Package model はドメインモデルを定義する。
package model

// Site はサイト全体の共通情報を表す。
type Site struct {
	Name        string       `yaml:"name"`
	Socials     Socials      `yaml:"socials"`
	Contact     SiteContact  `yaml:"contact"`
	BandMembers []BandMember `yaml:"band_members"`
	NavLinks    []NavLink    `yaml:"nav_links"`
}

// Socials はSNSアカウントのURL。
type Socials struct {
	Instagram string `yaml:"instagram"`
	Facebook  string `yaml:"facebook"`
	TikTok    string `yaml:"tiktok"`
	YouTube   string `yaml:"youtube"`
}

// SiteContact は問い合わせ先メールアドレス。
type SiteContact struct {
	BookingEmail string `yaml:"booking_email"`
	PressEmail   string `yaml:"press_email"`
}

// BandMember はバンドメンバーを表す。
type BandMember struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	ImageURL string `yaml:"image_url"`
}

// NavLink はナビゲーションリンク。
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}
