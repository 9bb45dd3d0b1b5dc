/*
Package goofx is an OFX library that can parse OFX statement documents.

goofx accepts both OFX surface syntaxes: the legacy SGML dialect, which carries a
colon-delimited header and omits closing tags for leaf values, and the fully closed XML
dialect. Legacy documents are normalized into the same element tree the XML dialect
parses into, and statements are then extracted from that tree.

	doc, err := goofx.Parse(text)
	if err != nil {
		// errors.Is(err, goofx.ErrHeader), goofx.ErrStructure, ...
	}
	for _, stmt := range doc.Statements {
		fmt.Println(stmt.Account.ID, stmt.Balance.Ledger)
	}

Parsing is synchronous and holds no package level mutable state, so independent
documents may be parsed from multiple goroutines.
*/
package goofx
