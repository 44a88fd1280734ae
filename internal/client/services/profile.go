package services

import (
	"strings"
	"sync"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
)

const MsgAccountRequired = "Please enter both name and email."

// ProfileService manages the profile screen account list. The list lives in
// memory and starts over with every process.
type ProfileService interface {
	Add(name, email string) (models.Account, error)
	Delete(id int64) bool
	List() []models.Account
}

// DefaultAccounts are the accounts the profile list starts with.
func DefaultAccounts() []models.Account {
	return []models.Account{
		{ID: 1, Name: "Ghulam Mohi u Din", Email: "ghulam@example.com"},
		{ID: 2, Name: "Ali Abbas", Email: "ali@example.com"},
	}
}

type profileService struct {
	mu       sync.Mutex
	accounts []models.Account
}

func NewProfileService(seed ...models.Account) ProfileService {
	accounts := make([]models.Account, len(seed))
	copy(accounts, seed)
	return &profileService{accounts: accounts}
}

// Add appends an account with id one above the largest id in use.
func (p *profileService) Add(name, email string) (models.Account, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return models.Account{}, models.NewValidationError("", MsgAccountRequired)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var maxID int64
	for _, a := range p.accounts {
		maxID = max(maxID, a.ID)
	}

	acc := models.Account{ID: maxID + 1, Name: name, Email: email}
	p.accounts = append(p.accounts, acc)
	return acc, nil
}

// Delete removes the account with id and reports whether one was found.
func (p *profileService) Delete(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, a := range p.accounts {
		if a.ID == id {
			p.accounts = append(p.accounts[:i:i], p.accounts[i+1:]...)
			return true
		}
	}
	return false
}

func (p *profileService) List() []models.Account {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Account, len(p.accounts))
	copy(out, p.accounts)
	return out
}
