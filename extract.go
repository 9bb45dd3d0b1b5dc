package goofx

import (
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// Extract builds a Document from a normalized tree.
func Extract(tree *Tree) (*Document, error) {
	sonrs := tree.FindFirst(signOnPath)
	if sonrs == nil {
		return nil, newError(ErrStructure, signOnPath, "sign on information not found")
	}
	signOn, err := extractSignOn(tree, sonrs)
	if err != nil {
		return nil, err
	}

	types := accountTypes(tree)
	if len(types) == 0 {
		return nil, newError(ErrStructure, "", "unsupported account type, no known message set found")
	}
	glog.V(2).Infof("extract: account types %v", types)

	document := &Document{SignOn: signOn, Statements: make([]Statement, 0)}
	for _, t := range types {
		set := GetMessageSets()[t]
		nodes := tree.FindAll(set.Statements)
		if len(nodes) == 0 {
			return nil, newError(ErrStructure, set.Statements, "no statement responses found for account type %s", t)
		}
		for _, node := range nodes {
			stmt, err := extractStatement(node, t)
			if err != nil {
				return nil, err
			}
			document.Statements = append(document.Statements, stmt)
		}
	}
	return document, nil
}

// accountTypes returns the account types whose message sets appear anywhere in tree,
// in extraction order.
func accountTypes(tree *Tree) []AccountType {
	markers := make(map[string]bool)
	for _, e := range tree.Root().FindAll(Anywhere) {
		if IsMessageSet(e.Name) {
			markers[e.Name] = true
		}
	}
	types := make([]AccountType, 0, len(statementAccountTypes))
	for _, t := range statementAccountTypes {
		if markers[GetMessageSets()[t].Marker] {
			types = append(types, t)
		}
	}
	return types
}

func extractSignOn(tree *Tree, node *Element) (SignOn, error) {
	code, ok := tree.ValueOf(node, "STATUS/CODE")
	if !ok {
		return SignOn{}, newError(ErrStructure, "SONRS/STATUS/CODE", "status code not found")
	}
	statusCode, err := strconv.Atoi(code)
	if err != nil {
		return SignOn{}, wrapError(ErrValue, "SONRS/STATUS/CODE", err)
	}
	serverDate, err := dateOf(node, "DTSERVER")
	if err != nil {
		return SignOn{}, err
	}
	severity, _ := tree.ValueOf(node, "STATUS/SEVERITY")
	language, _ := tree.ValueOf(node, "LANGUAGE")
	org, _ := tree.ValueOf(node, "FI/ORG")
	fid, _ := tree.ValueOf(node, "FI/FID")
	intuBID, _ := tree.ValueOf(node, "INTU.BID")
	return SignOn{
		StatusCode:     statusCode,
		StatusSeverity: severity,
		ServerDate:     serverDate,
		Language:       language,
		Organization:   org,
		InstitutionID:  fid,
		IntuBID:        intuBID,
	}, nil
}

func extractStatement(node *Element, t AccountType) (Statement, error) {
	set := GetMessageSets()[t]
	stmt := Statement{AccountType: t}

	currency, _ := node.ValueOf(currencyPath)
	if currency == "" {
		return Statement{}, newError(ErrStructure, "CURDEF", "currency not found")
	}
	stmt.Currency = currency

	accountNode := node.FindFirst(set.Account)
	if accountNode == nil {
		return Statement{}, newError(ErrStructure, set.Account, "account information not found")
	}
	account, err := NewAccount(accountNode, t)
	if err != nil {
		return Statement{}, err
	}
	stmt.Account = *account

	stmt.Transactions = make([]Transaction, 0)
	if list := node.FindFirst(transactionListPath); list != nil {
		if stmt.Start, err = dateOf(list, "DTSTART"); err != nil {
			return Statement{}, err
		}
		if stmt.End, err = dateOf(list, "DTEND"); err != nil {
			return Statement{}, err
		}
		for _, txNode := range list.FindAll(transactionPath) {
			txn, err := NewTransaction(txNode, stmt.Currency)
			if err != nil {
				return Statement{}, err
			}
			stmt.Transactions = append(stmt.Transactions, *txn)
		}
	} else {
		glog.V(2).Infof("extract: statement for account %s has no transaction list", account.ID)
	}

	ledger := node.FindFirst(ledgerBalancePath)
	if ledger == nil {
		return Statement{}, newError(ErrStructure, "LEDGERBAL", "balance information not found")
	}
	if stmt.Balance, err = NewBalance(ledger, node.FindFirst(availBalancePath)); err != nil {
		return Statement{}, err
	}
	return stmt, nil
}

// NewAccount builds an account of type t from an account aggregate.
func NewAccount(node *Element, t AccountType) (*Account, error) {
	switch t {
	case AccountsPayable, AccountsReceivable:
		return nil, newError(ErrUnsupported, node.Name, "%s account type not supported", t)
	case Bank, CreditCard:
	default:
		return nil, newError(ErrUnsupported, node.Name, "account type %s not supported", t)
	}

	id, ok := node.ValueOf(Anywhere + "/ACCTID")
	if !ok {
		return nil, newError(ErrStructure, node.Name+"/ACCTID", "account id not found")
	}
	key, _ := node.ValueOf(Anywhere + "/ACCTKEY")
	account := &Account{ID: id, Key: key, Type: t, BankAccountType: BankAccountTypeNA}
	if t != Bank {
		return account, nil
	}

	if account.BankID, ok = node.ValueOf(Anywhere + "/BANKID"); !ok {
		return nil, newError(ErrStructure, node.Name+"/BANKID", "bank id not found")
	}
	if account.BranchID, ok = node.ValueOf(Anywhere + "/BRANCHID"); !ok {
		return nil, newError(ErrStructure, node.Name+"/BRANCHID", "branch id not found")
	}
	subtype, _ := node.ValueOf(Anywhere + "/ACCTTYPE")
	if subtype == "" {
		return nil, newError(ErrStructure, node.Name+"/ACCTTYPE", "bank account type not found")
	}
	bankAccountType, err := ParseBankAccountType(subtype)
	if err != nil {
		return nil, err
	}
	account.BankAccountType = bankAccountType
	return account, nil
}

// NewBalance builds a balance from the ledger balance aggregate and the optional
// available balance aggregate, which may be nil.
func NewBalance(ledger, available *Element) (Balance, error) {
	var (
		balance Balance
		err     error
	)
	if balance.Ledger, err = amountOf(ledger, "LEDGERBAL/BALAMT", "BALAMT"); err != nil {
		return Balance{}, err
	}
	if !ledger.Has("DTASOF") {
		return Balance{}, newError(ErrStructure, "LEDGERBAL/DTASOF", "ledger balance date not found")
	}
	if balance.LedgerDate, err = dateOf(ledger, "DTASOF"); err != nil {
		return Balance{}, err
	}
	if available == nil {
		return balance, nil
	}
	if balance.Available, err = amountOf(available, "AVAILBAL/BALAMT", "BALAMT"); err != nil {
		return Balance{}, err
	}
	if balance.AvailableDate, err = dateOf(available, "DTASOF"); err != nil {
		return Balance{}, err
	}
	return balance, nil
}

// NewTransaction builds a transaction from a STMTTRN aggregate of a statement whose
// default currency is currency.
func NewTransaction(node *Element, currency string) (*Transaction, error) {
	var (
		txn = &Transaction{}
		err error
	)

	trnType, ok := node.ValueOf("TRNTYPE")
	if !ok {
		return nil, newError(ErrStructure, "STMTTRN/TRNTYPE", "transaction type not found")
	}
	if txn.Type, err = ParseTransactionType(trnType); err != nil {
		return nil, err
	}
	if txn.ID, ok = node.ValueOf("FITID"); !ok {
		return nil, newError(ErrStructure, "STMTTRN/FITID", "transaction id not found")
	}
	if txn.Amount, err = amountOf(node, "STMTTRN/TRNAMT", "TRNAMT"); err != nil {
		return nil, err
	}
	if txn.Posted, err = dateOf(node, "DTPOSTED"); err != nil {
		return nil, err
	}
	if txn.UserDate, err = dateOf(node, "DTUSER"); err != nil {
		return nil, err
	}
	if txn.AvailableDate, err = dateOf(node, "DTAVAIL"); err != nil {
		return nil, err
	}

	action, _ := node.ValueOf("CORRECTACTION")
	if txn.CorrectAction, err = ParseCorrectionAction(action); err != nil {
		return nil, err
	}
	txn.CorrectID, _ = node.ValueOf("CORRECTFITID")
	txn.ServerID, _ = node.ValueOf("SRVRTID")
	txn.CheckNumber, _ = node.ValueOf("CHECKNUM")
	txn.ReferenceNumber, _ = node.ValueOf("REFNUM")
	txn.SIC, _ = node.ValueOf("SIC")
	txn.PayeeID, _ = node.ValueOf("PAYEEID")
	txn.Name, _ = node.ValueOf("NAME")
	txn.Memo, _ = node.ValueOf("MEMO")
	txn.Currency = transactionCurrency(node, currency)

	for _, target := range statementAccountTypes {
		to := node.FindFirst(GetMessageSets()[target].TransferTo)
		if to == nil {
			continue
		}
		if txn.Counterparty, err = NewAccount(to, target); err != nil {
			return nil, err
		}
		break
	}
	return txn, nil
}

// transactionCurrency returns the first currency override present on a transaction, or
// the statement default. Overrides may be written as a scalar or as an aggregate
// carrying CURSYM.
func transactionCurrency(node *Element, fallback string) string {
	for _, name := range []string{"CURRENCY", "ORIGCURRENCY"} {
		override := node.FindFirst(name)
		if override == nil {
			continue
		}
		value := override.Value
		if !override.IsLeaf() {
			value, _ = override.ValueOf("CURSYM")
		}
		if value != "" {
			return value
		}
	}
	return fallback
}

// dateOf parses the optional date at path beneath node.
func dateOf(node *Element, path string) (date time.Time, err error) {
	value, _ := node.ValueOf(path)
	if date, err = ParseDate(value); err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Field = node.Name + "/" + path
		}
		return time.Time{}, err
	}
	return date, nil
}

// amountOf parses the required amount at path beneath node, naming field in errors.
func amountOf(node *Element, field, path string) (decimal.Decimal, error) {
	value, ok := node.ValueOf(path)
	if !ok || value == "" {
		return decimal.Zero, newError(ErrStructure, field, "amount not found")
	}
	amount, err := ParseAmount(value)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Field = field
		}
		return decimal.Zero, err
	}
	return amount, nil
}
