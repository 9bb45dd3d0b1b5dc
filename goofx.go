package goofx

import (
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

//revive:disable:exported

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

var transactionTypes = map[TransactionType]struct{}{
	DEBIT: {}, CREDIT: {}, INTEREST: {}, DIVIDEND: {}, FEE: {}, SERVICECHARGE: {},
	DEPOSIT: {}, ATM: {}, POS: {}, TRANSFER: {}, CHECK: {}, PAYMENT: {}, CASH: {},
	DIRECTDEPOSIT: {}, DIRECTDEBIT: {}, REPEATPAYMENT: {}, OTHER: {},
}

// CorrectionAction is the action a correcting transaction applies to CORRECTFITID.
type CorrectionAction string

const (
	CorrectionNone    CorrectionAction = ""
	CorrectionReplace CorrectionAction = "REPLACE"
	CorrectionDelete  CorrectionAction = "DELETE"

	// Written by some exporters in place of an absent CORRECTACTION.
	correctionNotApplicable CorrectionAction = "NA"
)

// AccountType is the kind of account a statement or account belongs to.
type AccountType int

const (
	AccountTypeNA AccountType = iota
	Bank
	CreditCard
	AccountsPayable
	AccountsReceivable
)

func (t AccountType) String() string {
	switch t {
	case Bank:
		return "Bank"
	case CreditCard:
		return "CreditCard"
	case AccountsPayable:
		return "AccountsPayable"
	case AccountsReceivable:
		return "AccountsReceivable"
	}
	return "NA"
}

// BankAccountType is the ACCTTYPE of a bank account. Accounts of any other AccountType
// carry BankAccountTypeNA.
type BankAccountType string

const (
	BankAccountTypeNA    BankAccountType = ""
	Checking             BankAccountType = "CHECKING"
	Savings              BankAccountType = "SAVINGS"
	MoneyMarket          BankAccountType = "MONEYMRKT"
	CreditLine           BankAccountType = "CREDITLINE"
	CertificateOfDeposit BankAccountType = "CD"
)

type SignOn struct {
	StatusCode     int
	StatusSeverity string
	ServerDate     time.Time
	Language       string
	Organization   string
	InstitutionID  string
	IntuBID        string
}

type Account struct {
	ID   string
	Key  string
	Type AccountType
	// Bank accounts only.
	BankID          string
	BranchID        string
	BankAccountType BankAccountType
}

// Balance is a statement's balance snapshot. Statements without an available balance
// carry a zero Available and a zero AvailableDate.
type Balance struct {
	Ledger        decimal.Decimal
	LedgerDate    time.Time
	Available     decimal.Decimal
	AvailableDate time.Time
}

type Transaction struct {
	Type            TransactionType
	Posted          time.Time
	Amount          decimal.Decimal
	ID              string
	UserDate        time.Time // Zero if absent.
	AvailableDate   time.Time // Zero if absent.
	Name            string
	Memo            string
	CorrectID       string
	CorrectAction   CorrectionAction
	ServerID        string
	CheckNumber     string
	ReferenceNumber string
	SIC             string
	PayeeID         string
	Currency        string
	Counterparty    *Account // Set when the transaction names a transfer target.
}

type Statement struct {
	AccountType  AccountType
	Currency     string
	Start        time.Time
	End          time.Time
	Account      Account
	Balance      Balance
	Transactions []Transaction
}

// Document is a parsed OFX document. It is not modified after Parse returns it.
type Document struct {
	Dialect    Dialect
	SignOn     SignOn
	Statements []Statement
}

// Parse parses a complete OFX document held in text. It returns either a fully
// populated Document or a *ParseError describing the first failure.
func Parse(text string) (*Document, error) {
	return NewDocument(text, NewNormalizer())
}

// NewDocument parses text, normalizing legacy documents with n.
func NewDocument(text string, n Normalizer) (*Document, error) {
	header, err := InspectHeader(text)
	if err != nil {
		return nil, err
	}

	var root *Element
	if header.Dialect == Legacy {
		root, err = n.Normalize(header.Body)
	} else {
		root, err = ParseXML(header.Body)
	}
	if err != nil {
		return nil, err
	}

	tree := NewTree(root)
	glog.V(3).Infof("tree: %s", tree)
	document, err := Extract(tree)
	if err != nil {
		return nil, err
	}
	document.Dialect = header.Dialect
	return document, nil
}

// NewDocumentFromReader reads r to the end and parses its content.
func NewDocumentFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Transactions returns the transactions of every statement in document order.
func (d *Document) Transactions() []Transaction {
	txns := make([]Transaction, 0)
	for _, s := range d.Statements {
		txns = append(txns, s.Transactions...)
	}
	return txns
}
