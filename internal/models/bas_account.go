package model

// BasAccount is a code from the BAS chart of accounts. Accounts dropped from
// an import feed are deactivated, never deleted, so historical task
// references stay resolvable.
type BasAccount struct {
	ID          string `gorm:"primaryKey;size:10" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"size:100" json:"category"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}

// DefaultAccounts is the chart seeded into an empty bas_accounts table.
func DefaultAccounts() []BasAccount {
	return []BasAccount{
		{ID: "1930", Name: "Företagskonto / checkräkningskonto", Category: "Tillgångar", Description: "Company account/checking account", IsActive: true},
		{ID: "5010", Name: "Lokalhyra", Category: "Kostnader", Description: "Premises rent", IsActive: true},
		{ID: "5800", Name: "Resekostnader", Category: "Kostnader", Description: "Travel expenses", IsActive: true},
		{ID: "6200", Name: "Telekommunikation", Category: "Kostnader", Description: "Telecommunications", IsActive: true},
		{ID: "7010", Name: "Löner", Category: "Personal", Description: "Salaries", IsActive: true},
	}
}
