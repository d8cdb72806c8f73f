package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Page identifies the console page the operator is on. It is a read-only
// input to intent classification.
type Page string

const (
	PageBusDashboard Page = "busDashboard"
	PageManageRoute  Page = "manageRoute"
)

// ParsePage maps a raw page name to a known Page, defaulting to the bus
// dashboard for anything unrecognized.
func ParsePage(raw string) Page {
	if Page(raw) == PageManageRoute {
		return PageManageRoute
	}
	return PageBusDashboard
}

// Role is the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)
