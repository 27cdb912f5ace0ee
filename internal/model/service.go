package model

import (
	"fmt"
	"strings"
)

// ServiceKey identifies one of the services offered by the company.
type ServiceKey string

const (
	ServiceWebDevelopment     ServiceKey = "webDevelopment"
	ServiceSystemsIntegration ServiceKey = "systemsIntegration"
	ServiceProcessAutomation  ServiceKey = "processAutomation"
	ServiceTechConsulting     ServiceKey = "techConsulting"
	ServiceAgileEmpowerment   ServiceKey = "agileEmpowerment"
	ServiceTrainingPrograms   ServiceKey = "trainingPrograms"
)

var serviceKeys = []ServiceKey{
	ServiceWebDevelopment,
	ServiceSystemsIntegration,
	ServiceProcessAutomation,
	ServiceTechConsulting,
	ServiceAgileEmpowerment,
	ServiceTrainingPrograms,
}

// ServiceKeys returns every service key in declaration order.
func ServiceKeys() []ServiceKey {
	out := make([]ServiceKey, len(serviceKeys))
	copy(out, serviceKeys)
	return out
}

func (k ServiceKey) Valid() bool {
	for _, known := range serviceKeys {
		if k == known {
			return true
		}
	}
	return false
}

// AppLanguage is a locale tag supported by the storefront.
type AppLanguage string

const (
	LanguageSpanish AppLanguage = "es"
	LanguageEnglish AppLanguage = "en"

	DefaultLanguage = LanguageSpanish
)

// Languages returns the supported languages, default first.
func Languages() []AppLanguage {
	return []AppLanguage{LanguageSpanish, LanguageEnglish}
}

func (l AppLanguage) Valid() bool {
	return l == LanguageSpanish || l == LanguageEnglish
}

// ParseAppLanguage accepts a supported tag in any letter case.
func ParseAppLanguage(raw string) (AppLanguage, error) {
	l := AppLanguage(strings.ToLower(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", raw)
	}
	return l, nil
}
