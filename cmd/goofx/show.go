package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rockstardevs/goofx/v2"
)

const (
	formatTable   = "table"
	formatSummary = "summary"
	dateFormat    = "2006-01-02"
)

type showFlags struct {
	Format string
}

type ShowCommandRunner struct {
	cfg   *Config
	flags *showFlags
}

func NewShowCmd(cfg *Config) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <file>...",
		Short: "Show the statements of OFX files",
		Long: `Parse each OFX file and show its sign on status, statements, balances
and transactions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{cfg: cfg, flags: flags}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format (table, summary), overrides output.format")

	return cmd
}

func (r *ShowCommandRunner) Run(paths []string) error {
	format := r.cfg.Output.Format
	if r.flags.Format != "" {
		format = r.flags.Format
	}
	if format != formatTable && format != formatSummary {
		return fmt.Errorf("unknown output format %q", format)
	}

	for _, path := range paths {
		text, err := readDocument(path, r.cfg.Input.Charset)
		if err != nil {
			return err
		}
		document, err := goofx.Parse(text)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if format == formatSummary {
			displaySummary(path, document)
		} else {
			displayDocument(path, document)
		}
	}
	return nil
}

func displaySummary(path string, document *goofx.Document) {
	for _, stmt := range document.Statements {
		pterm.Printf("%s\t%s\t%s\t%s %s\t%d transactions\n",
			path, stmt.AccountType, stmt.Account.ID, stmt.Balance.Ledger.StringFixed(2), stmt.Currency, len(stmt.Transactions))
	}
}

func displayDocument(path string, document *goofx.Document) {
	pterm.DefaultSection.Printf("%s (%s)", path, document.Dialect)
	signOn := document.SignOn
	pterm.Info.Printf("Sign on: %d %s, server date %s, institution %s %s\n",
		signOn.StatusCode, signOn.StatusSeverity, formatDate(signOn.ServerDate.IsZero(), signOn.ServerDate.Format(dateFormat)),
		signOn.Organization, signOn.InstitutionID)

	for _, stmt := range document.Statements {
		displayStatement(stmt)
	}
	pterm.Info.Printf("Total: %d statements, %d transactions\n", len(document.Statements), len(document.Transactions()))
}

func displayStatement(stmt goofx.Statement) {
	account := stmt.Account
	title := fmt.Sprintf("%s account %s", stmt.AccountType, account.ID)
	if account.Type == goofx.Bank {
		title = fmt.Sprintf("%s (%s, bank %s)", title, account.BankAccountType, account.BankID)
	}
	pterm.DefaultSection.WithLevel(2).Println(title)

	balance := stmt.Balance
	pterm.Printf("Period %s to %s, currency %s\n",
		formatDate(stmt.Start.IsZero(), stmt.Start.Format(dateFormat)),
		formatDate(stmt.End.IsZero(), stmt.End.Format(dateFormat)), stmt.Currency)
	pterm.Printf("Ledger balance %s as of %s, available balance %s as of %s\n",
		balance.Ledger.StringFixed(2), formatDate(balance.LedgerDate.IsZero(), balance.LedgerDate.Format(dateFormat)),
		balance.Available.StringFixed(2), formatDate(balance.AvailableDate.IsZero(), balance.AvailableDate.Format(dateFormat)))

	tableData := pterm.TableData{{"Posted", "Type", "Amount", "Currency", "ID", "Name", "Memo"}}
	for _, txn := range stmt.Transactions {
		amount := txn.Amount.StringFixed(2)
		if txn.Amount.IsNegative() {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}
		tableData = append(tableData, []string{
			formatDate(txn.Posted.IsZero(), txn.Posted.Format(dateFormat)),
			string(txn.Type), amount, txn.Currency, txn.ID, txn.Name, txn.Memo,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		pterm.Warning.Printf("Failed to render transactions: %v\n", err)
	}
}

func formatDate(zero bool, formatted string) string {
	if zero {
		return "-"
	}
	return formatted
}
