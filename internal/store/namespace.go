// Package store layers typed record stores over the key/value backend and
// keeps the real and foreign profiles isolated from each other.
package store

import "fmt"

// Namespace identifies which of the two isolated profiles a store reads and
// writes. Every record except the app mode flag and the device PIN lives
// under exactly one namespace.
type Namespace string

const (
	// Real is the user's actual data set.
	Real Namespace = "real"
	// Foreign is the decoy data set shown while foreign view is enabled.
	Foreign Namespace = "foreign"
)

// Logical record names. The PIN and app mode flag are deliberately shared
// across both profiles for a single device lock.
const (
	keyTransactions  = "transactions"
	keyUser          = "user"
	keySettings      = "settings"
	keyGoals         = "goals"
	keyExchangeCards = "exchange_rates"

	keyAppMode = "app_mode"
	keyPIN     = "pin"
)

// key prefixes a logical record name with the namespace.
func (n Namespace) key(name string) string {
	return fmt.Sprintf("%s/%s", n, name)
}
