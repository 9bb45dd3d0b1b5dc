package main

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const statement = legacyPreamble + `<OFX>
<SIGNONMSGSRSV1><SONRS><STATUS><CODE>0<SEVERITY>INFO</STATUS><DTSERVER>20200102<LANGUAGE>ENG</SONRS></SIGNONMSGSRSV1>
<BANKMSGSRSV1><STMTTRNRS><STMTRS><CURDEF>USD
<BANKACCTFROM><BANKID>1<BRANCHID>7<ACCTID>42<ACCTTYPE>CHECKING</BANKACCTFROM>
<BANKTRANLIST><DTSTART>20200101<DTEND>20200131
<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20200115<TRNAMT>-5.00<FITID>TX1<MEMO>Caf`

var _ = Describe("ShowCommandRunner", func() {
	var (
		dir  string
		path string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "goofx")
		Expect(err).To(BeNil())
		path = filepath.Join(dir, "statement.ofx")
		content := append([]byte(statement), 0xE9)
		content = append(content, []byte("</STMTTRN>\n</BANKTRANLIST>\n<LEDGERBAL><BALAMT>5.00<DTASOF>20200131</LEDGERBAL>\n</STMTRS></STMTTRNRS></BANKMSGSRSV1>\n</OFX>\n")...)
		Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	DescribeTable("should display a parsed document",
		func(configured, flag string) {
			cfg := NewDefaultConfig()
			cfg.Output.Format = configured
			runner := &ShowCommandRunner{cfg: cfg, flags: &showFlags{Format: flag}}
			Expect(runner.Run([]string{path})).To(Succeed())
		},
		Entry("table", formatTable, ""),
		Entry("summary", formatSummary, ""),
		Entry("flag overrides config", formatTable, formatSummary),
	)

	It("should reject an unknown format flag", func() {
		runner := &ShowCommandRunner{cfg: NewDefaultConfig(), flags: &showFlags{Format: "json"}}
		Expect(runner.Run([]string{path})).To(MatchError(`unknown output format "json"`))
	})

	It("should report parse failures with the file name", func() {
		broken := filepath.Join(dir, "broken.ofx")
		Expect(os.WriteFile(broken, []byte(legacyPreamble+"<OFX><SIGNONMSGSRSV1>"), 0o600)).To(Succeed())
		runner := &ShowCommandRunner{cfg: NewDefaultConfig(), flags: &showFlags{}}
		err := runner.Run([]string{broken})
		Expect(err).To(MatchError(ContainSubstring("failed to parse " + broken)))
	})
})

var _ = Describe("NewRootCmd()", func() {
	It("should register the show and header commands", func() {
		names := []string{}
		for _, c := range NewRootCmd().Commands() {
			names = append(names, c.Name())
		}
		Expect(names).To(ContainElements("show", "header"))
	})
})
