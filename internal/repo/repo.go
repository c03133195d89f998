package repo

import (
	"github.com/boostpanel/boostpanel/internal/pg"
	accountrepo "github.com/boostpanel/boostpanel/internal/repo/account-repo"
	auditrepo "github.com/boostpanel/boostpanel/internal/repo/audit-repo"
	channelrepo "github.com/boostpanel/boostpanel/internal/repo/channel-repo"
	grantrepo "github.com/boostpanel/boostpanel/internal/repo/grant-repo"
	ledgerrepo "github.com/boostpanel/boostpanel/internal/repo/ledger-repo"
	orderrepo "github.com/boostpanel/boostpanel/internal/repo/order-repo"
)

// Repositories keeps the concrete repos in one place; each service consumes
// only the interface slice it declares for itself.
type Repositories struct {
	Account *accountrepo.Repository
	Ledger  *ledgerrepo.Repository
	Order   *orderrepo.Repository
	Channel *channelrepo.Repository
	Grant   *grantrepo.Repository
	Audit   *auditrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Account: accountrepo.New(conn),
		Ledger:  ledgerrepo.New(conn),
		Order:   orderrepo.New(conn),
		Channel: channelrepo.New(conn),
		Grant:   grantrepo.New(conn),
		Audit:   auditrepo.New(conn),
	}
}
