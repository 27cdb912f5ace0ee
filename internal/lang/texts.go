// Package lang holds the storefront UI copy for every supported language.
//
// Each language is an AppTexts value: a typed tree whose json tags name the
// key-path segments used by the front-end ("navbar.navigation.home"). The
// trees are package-level values built once and handed out by value, so
// callers can never modify the shared copy.
package lang

import "clipclic-storefront-backend/internal/model"

// AppTexts is the complete text tree for one language.
type AppTexts struct {
	Navbar   NavbarTexts   `json:"navbar"`
	Home     HomeTexts     `json:"home"`
	Footer   FooterTexts   `json:"footer"`
	Products ProductsTexts `json:"products"`
}

type NavbarTexts struct {
	Brand1           string           `json:"brand1"`
	Brand2           string           `json:"brand2"`
	Navigation       NavbarNavigation `json:"navigation"`
	ToggleNavigation string           `json:"toggleNavigation"`
}

// NavbarNavigation labels the top-level catalog menu.
type NavbarNavigation struct {
	Home             string `json:"home"`
	SchoolSupplies   string `json:"schoolSupplies"`
	ChristmasSpecial string `json:"christmasSpecial"`
	Technology       string `json:"technology"`
	MousesKeyboards  string `json:"mousesKeyboards"`
	Audio            string `json:"audio"`
	Cables           string `json:"cables"`
	Storage          string `json:"storage"`
	Others           string `json:"others"`
}

type HomeTexts struct {
	HeroSection         HeroSection         `json:"heroSection"`
	CallToActionSection CallToActionSection `json:"callToActionSection"`
}

type HeroSection struct {
	HeaderTitle string      `json:"headerTitle"`
	Description string      `json:"description"`
	Buttons     HeroButtons `json:"buttons"`
}

type HeroButtons struct {
	GetStarted  string `json:"getStarted"`
	OurServices string `json:"ourServices"`
}

type CallToActionSection struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Buttons     CallToActionButtons `json:"buttons"`
}

type CallToActionButtons struct {
	GetStarted string `json:"getStarted"`
}

type FooterTexts struct {
	CompanyInfo       CompanyInfo      `json:"companyInfo"`
	Navigation        FooterNavigation `json:"navigation"`
	Services          FooterServices   `json:"services"`
	Contact           FooterContact    `json:"contact"`
	Copyright         string           `json:"copyright"`
	CopyrightLinkText string           `json:"copyrightLinkText"`
}

type CompanyInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FooterNavigation struct {
	Title string                `json:"title"`
	Links FooterNavigationLinks `json:"links"`
}

type FooterNavigationLinks struct {
	Home      string `json:"home"`
	About     string `json:"about"`
	Services  string `json:"services"`
	Portfolio string `json:"portfolio"`
}

type FooterServices struct {
	Title string              `json:"title"`
	Links FooterServicesLinks `json:"links"`
}

type FooterServicesLinks struct {
	WebDevelopment string `json:"webDevelopment"`
	MobileApps     string `json:"mobileApps"`
	CloudSolutions string `json:"cloudSolutions"`
	Consulting     string `json:"consulting"`
}

type FooterContact struct {
	Title string `json:"title"`
	Email string `json:"email"`
}

// ProductsTexts is the copy of the product listing page. The results
// counter is derived per call, see ResultsCount.
type ProductsTexts struct {
	SearchPlaceholder string `json:"searchPlaceholder"`
	SearchAriaLabel   string `json:"searchAriaLabel"`
	NoResults         string `json:"noResults"`
	OutOfStock        string `json:"outOfStock"`

	language model.AppLanguage
}

// ResultsCount renders the pluralized "N products found" caption.
func (p ProductsTexts) ResultsCount(count int) string {
	return FormatResultsCount(p.language, count)
}
