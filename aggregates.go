package goofx

import "sync"

// MessageSet holds the paths used to extract statements of one account type.
type MessageSet struct {
	Marker     string // Message set element announcing the account type.
	Statements string // Statement responses, from the root.
	Account    string // Account aggregate, relative to a statement response.
	TransferTo string // Transfer target aggregate, relative to a transaction.
}

// Paths relative to a statement response; shared by every message set.
const (
	currencyPath        = Anywhere + "/CURDEF"
	transactionListPath = Anywhere + "/BANKTRANLIST"
	transactionPath     = Anywhere + "/STMTTRN"
	ledgerBalancePath   = Anywhere + "/LEDGERBAL"
	availBalancePath    = Anywhere + "/AVAILBAL"
	signOnPath          = "OFX/SIGNONMSGSRSV1/SONRS"
)

var messageSetsMap map[AccountType]MessageSet
var initMessageSetsMap sync.Once

// statementAccountTypes lists the account types statements are extracted for, in
// extraction order.
var statementAccountTypes = []AccountType{Bank, CreditCard}

// GetMessageSets returns the singleton map of supported message sets.
func GetMessageSets() map[AccountType]MessageSet {
	initMessageSetsMap.Do(func() {
		messageSetsMap = map[AccountType]MessageSet{
			Bank: {
				Marker:     "BANKMSGSRSV1",
				Statements: Anywhere + "/BANKMSGSRSV1/" + Anywhere + "/STMTRS",
				Account:    Anywhere + "/BANKACCTFROM",
				TransferTo: "BANKACCTTO",
			},
			CreditCard: {
				Marker:     "CREDITCARDMSGSRSV1",
				Statements: Anywhere + "/CREDITCARDMSGSRSV1/" + Anywhere + "/CCSTMTRS",
				Account:    Anywhere + "/CCACCTFROM",
				TransferTo: "CCACCTTO",
			},
		}
	})
	return messageSetsMap
}

// IsMessageSet returns true if the given tag announces a supported account type.
func IsMessageSet(tag string) bool {
	for _, m := range GetMessageSets() {
		if m.Marker == tag {
			return true
		}
	}
	return false
}
