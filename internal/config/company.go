package config

// CompanyDetails holds the static product info served at /api/company_details.
type CompanyDetails struct {
	CompanyName string `json:"company_name"`
	Slogan      string `json:"slogan"`
	Contacts    string `json:"contacts"`
}

// Company reads the company details from the environment.
func Company() CompanyDetails {
	return CompanyDetails{
		CompanyName: getEnv("COMPANY_NAME", "Run Tracker"),
		Slogan:      getEnv("SLOGAN", "Run with us"),
		Contacts:    getEnv("CONTACTS", "support@runtracker.local"),
	}
}
