package lang

import "clipclic-storefront-backend/internal/model"

// Brand names and the contact address are not translated.
var englishTexts = AppTexts{
	Navbar: NavbarTexts{
		Brand1: "Clip & Clic",
		Brand2: "",
		Navigation: NavbarNavigation{
			Home:             "Home",
			SchoolSupplies:   "School supplies",
			ChristmasSpecial: "Christmas Special",
			Technology:       "Technology",
			MousesKeyboards:  "Mice / Keyboards",
			Audio:            "Audio",
			Cables:           "Cables",
			Storage:          "Storage",
			Others:           "Others",
		},
		ToggleNavigation: "Toggle navigation",
	},
	Home: HomeTexts{
		HeroSection: HeroSection{
			HeaderTitle: "Technology and School Supplies",
			Description: "Get your school year ready with reliable technology and quality supplies. " +
				"At Clip and Clic, we support your learning at home, at the office or at school.",
			Buttons: HeroButtons{
				GetStarted:  "Get Started",
				OurServices: "Our Products",
			},
		},
		CallToActionSection: CallToActionSection{
			Title: "Relax, we take care of it.",
			Description: "At our school supplies store we make your life simpler: " +
				"we prepare the quote for you and always offer you the best price. " +
				"You just pick what you need, we do the rest.",
			Buttons: CallToActionButtons{
				GetStarted: "Start Today",
			},
		},
	},
	Footer: FooterTexts{
		CompanyInfo: CompanyInfo{
			Title:       "Clip & Clic Company",
			Description: "We offer modern business solutions to help your company grow and succeed in the digital age.",
		},
		Navigation: FooterNavigation{
			Title: "Quick Links",
			Links: FooterNavigationLinks{
				Home:      "Home",
				About:     "About",
				Services:  "Services",
				Portfolio: "Portfolio",
			},
		},
		Services: FooterServices{
			Title: "Services",
			Links: FooterServicesLinks{
				WebDevelopment: "Web Development",
				MobileApps:     "Mobile Apps",
				CloudSolutions: "Cloud Solutions",
				Consulting:     "Consulting",
			},
		},
		Contact: FooterContact{
			Title: "Contact Information",
			Email: contactEmail,
		},
		Copyright:         "Made by",
		CopyrightLinkText: "FennecSoft",
	},
	Products: ProductsTexts{
		SearchPlaceholder: "Search products...",
		SearchAriaLabel:   "Search products",
		NoResults:         "There are no products available in this category.",
		OutOfStock:        "Out of Stock",
		language:          model.LanguageEnglish,
	},
}
