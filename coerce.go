package goofx

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried, in order, before falling back to fixed width OFX dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseDate parses an OFX date to a calendar date at midnight UTC. Values such as
// "2019-10-01" are parsed directly; anything else must start with YYYYMMDD, which covers
// the full OFX form "YYYYMMDDHHMMSS.XXX[gmt offset:tz name]". Values shorter than eight
// characters, including the empty string, yield the zero time.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	if len(s) < 8 {
		return time.Time{}, nil
	}

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return time.Time{}, newError(ErrValue, "date", "bad year in %q", s)
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, newError(ErrValue, "date", "bad month in %q", s)
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil || day < 1 {
		return time.Time{}, newError(ErrValue, "date", "bad day in %q", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflowing days into the next month.
	if t.Day() != day {
		return time.Time{}, newError(ErrValue, "date", "bad day in %q", s)
	}
	return t, nil
}

// ParseAmount parses a decimal amount written with a '.' decimal point, no grouping
// separators and no exponent. The host locale is never consulted.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, newError(ErrValue, "amount", "empty value")
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, newError(ErrValue, "amount", "exponent not allowed in %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ParseError{Kind: ErrValue, Field: "amount", Msg: strconv.Quote(s), Err: err}
	}
	return d, nil
}

// ParseTransactionType looks up an OFX TRNTYPE code.
func ParseTransactionType(s string) (TransactionType, error) {
	if _, ok := transactionTypes[TransactionType(s)]; !ok {
		return "", newError(ErrValue, "TRNTYPE", "unrecognized transaction type %q", s)
	}
	return TransactionType(s), nil
}

// ParseCorrectionAction looks up an OFX CORRECTACTION code. The empty string and NA
// mean no correction.
func ParseCorrectionAction(s string) (CorrectionAction, error) {
	switch a := CorrectionAction(s); a {
	case CorrectionNone, CorrectionReplace, CorrectionDelete:
		return a, nil
	case correctionNotApplicable:
		return CorrectionNone, nil
	}
	return CorrectionNone, newError(ErrValue, "CORRECTACTION", "unrecognized correction action %q", s)
}

// ParseBankAccountType looks up an OFX ACCTTYPE code.
func ParseBankAccountType(s string) (BankAccountType, error) {
	switch t := BankAccountType(s); t {
	case Checking, Savings, MoneyMarket, CreditLine, CertificateOfDeposit:
		return t, nil
	}
	return BankAccountTypeNA, newError(ErrValue, "ACCTTYPE", "unrecognized bank account type %q", s)
}
