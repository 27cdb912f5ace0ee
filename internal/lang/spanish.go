package lang

import "clipclic-storefront-backend/internal/model"

var spanishTexts = AppTexts{
	Navbar: NavbarTexts{
		Brand1: "Clip & Clic",
		Brand2: "",
		Navigation: NavbarNavigation{
			Home:             "Inicio",
			SchoolSupplies:   "Útiles escolares",
			ChristmasSpecial: "Especial Navidad",
			Technology:       "Tecnología",
			MousesKeyboards:  "Mouses / Teclados",
			Audio:            "Audio",
			Cables:           "Cables",
			Storage:          "Almacenamiento",
			Others:           "Otros",
		},
		ToggleNavigation: "Alternar navegación",
	},
	Home: HomeTexts{
		HeroSection: HeroSection{
			HeaderTitle: "Artículos de Tecnología y Útiles Escolares",
			Description: "Prepara tu año escolar con tecnología confiable y útiles de calidad. " +
				"En Clip and Clic, apoyamos tu aprendizaje desde casa, oficina o colegio.",
			Buttons: HeroButtons{
				GetStarted:  "Comenzar",
				OurServices: "Nuestros Productos",
			},
		},
		CallToActionSection: CallToActionSection{
			Title: "Descansa, nosotros nos encargamos.",
			Description: "En nuestra tienda de útiles escolares, simplificamos tu vida: " +
				"realizamos la cotización por ti y te ofrecemos siempre el mejor precio. " +
				"Tú solo eliges lo que necesitas, nosotros hacemos el resto.",
			Buttons: CallToActionButtons{
				GetStarted: "Comenzar Hoy",
			},
		},
	},
	Footer: FooterTexts{
		CompanyInfo: CompanyInfo{
			Title:       "Clip & Clic Company",
			Description: "Ofrecemos soluciones de negocio modernas para ayudar a su empresa a crecer y tener éxito en la era digital.",
		},
		Navigation: FooterNavigation{
			Title: "Enlaces Rápidos",
			Links: FooterNavigationLinks{
				Home:      "Inicio",
				About:     "Acerca de",
				Services:  "Servicios",
				Portfolio: "Portafolio",
			},
		},
		Services: FooterServices{
			Title: "Servicios",
			Links: FooterServicesLinks{
				WebDevelopment: "Desarrollo Web",
				MobileApps:     "Aplicaciones Móviles",
				CloudSolutions: "Soluciones en la Nube",
				Consulting:     "Consultoría",
			},
		},
		Contact: FooterContact{
			Title: "Información de Contacto",
			Email: contactEmail,
		},
		Copyright:         "Hecho por",
		CopyrightLinkText: "FennecSoft",
	},
	Products: ProductsTexts{
		SearchPlaceholder: "Buscar productos...",
		SearchAriaLabel:   "Buscar productos",
		NoResults:         "No hay productos disponibles en esta categoría.",
		OutOfStock:        "Sin Stock",
		language:          model.LanguageSpanish,
	},
}

const contactEmail = "pyme.clipandclic@gmail.com"
