package goofx_test

const legacyHeader = "OFXHEADER:100\r\nDATA:OFXSGML\r\nVERSION:102\r\nSECURITY:NONE\r\n" +
	"ENCODING:USASCII\r\nCHARSET:1252\r\nCOMPRESSION:NONE\r\nOLDFILEUID:NONE\r\nNEWFILEUID:NONE\r\n\r\n"

const legacySignOn = `<SIGNONMSGSRSV1><SONRS>
<STATUS><CODE>0<SEVERITY>INFO</STATUS>
<DTSERVER>20190923042445.000[-3:BRT]
<LANGUAGE>ENG
<FI><ORG>Test Bank<FID>123</FI>
</SONRS></SIGNONMSGSRSV1>
`

// multiAccountBody holds one bank and one credit card statement.
const multiAccountBody = `<OFX>
` + legacySignOn + `<BANKMSGSRSV1><STMTTRNRS><TRNUID>1<STATUS><CODE>0<SEVERITY>INFO</STATUS>
<STMTRS><CURDEF>BRL
<BANKACCTFROM><BANKID>0341<BRANCHID>1234<ACCTID>56789-0<ACCTTYPE>CHECKING</BANKACCTFROM>
<BANKTRANLIST><DTSTART>20190101<DTEND>20190131
<STMTTRN><TRNTYPE>CREDIT<DTPOSTED>20190105<TRNAMT>50.00<FITID>TX1<MEMO>Salary</STMTTRN>
<STMTTRN><TRNTYPE>XFER<DTPOSTED>20190110<DTUSER>20190109<TRNAMT>-20.50<FITID>TX2<NAME>Rent
<ORIGCURRENCY><CURRATE>1.0<CURSYM>USD</ORIGCURRENCY>
<BANKACCTTO><BANKID>999<BRANCHID>2<ACCTID>111<ACCTTYPE>SAVINGS</BANKACCTTO>
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL><BALAMT>1029.50<DTASOF>20190131</LEDGERBAL>
<AVAILBAL><BALAMT>1000.00<DTASOF>20190131</AVAILBAL>
</STMTRS></STMTTRNRS></BANKMSGSRSV1>
<CREDITCARDMSGSRSV1><CCSTMTTRNRS><TRNUID>2<STATUS><CODE>0<SEVERITY>INFO</STATUS>
<CCSTMTRS><CURDEF>BRL<CCACCTFROM><ACCTID>4111</CCACCTFROM>
<BANKTRANLIST><DTSTART>20190101<DTEND>20190131
<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20190115<TRNAMT>-99.90<FITID>CC1<NAME>Store<CURRENCY>EUR</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL><BALAMT>-99.90<DTASOF>20190131</LEDGERBAL>
</CCSTMTRS></CCSTMTTRNRS></CREDITCARDMSGSRSV1>
</OFX>
`

// minimalBody is a bank statement with a single transaction and every leaf closed
// implicitly.
const minimalBody = `<OFX>
<SIGNONMSGSRSV1><SONRS><STATUS><CODE>0<SEVERITY>INFO</STATUS><DTSERVER>20200102<LANGUAGE>ENG</SONRS></SIGNONMSGSRSV1>
<BANKMSGSRSV1><STMTTRNRS><STMTRS>
<CURDEF>USD
<BANKACCTFROM><BANKID>1<BRANCHID>7<ACCTID>42<ACCTTYPE>CHECKING</BANKACCTFROM>
<BANKTRANLIST><DTSTART>20200101<DTEND>20200131
<STMTTRN><TRNTYPE>CREDIT<DTPOSTED>20200115<TRNAMT>50.00<FITID>TX1</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL><BALAMT>50.00<DTASOF>20200131</LEDGERBAL>
<AVAILBAL><BALAMT>50.00<DTASOF>20200131</AVAILBAL>
</STMTRS></STMTTRNRS></BANKMSGSRSV1>
</OFX>
`

// minimalXML is minimalBody in the conformant dialect.
const minimalXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<?OFX OFXHEADER="200" VERSION="211" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="NONE"?>
<OFX>
  <SIGNONMSGSRSV1>
    <SONRS>
      <STATUS><CODE>0</CODE><SEVERITY>INFO</SEVERITY></STATUS>
      <DTSERVER>20200102</DTSERVER>
      <LANGUAGE>ENG</LANGUAGE>
    </SONRS>
  </SIGNONMSGSRSV1>
  <BANKMSGSRSV1>
    <STMTTRNRS>
      <STMTRS>
        <CURDEF>USD</CURDEF>
        <BANKACCTFROM>
          <BANKID>1</BANKID>
          <BRANCHID>7</BRANCHID>
          <ACCTID>42</ACCTID>
          <ACCTTYPE>CHECKING</ACCTTYPE>
        </BANKACCTFROM>
        <BANKTRANLIST>
          <DTSTART>20200101</DTSTART>
          <DTEND>20200131</DTEND>
          <STMTTRN>
            <TRNTYPE>CREDIT</TRNTYPE>
            <DTPOSTED>20200115</DTPOSTED>
            <TRNAMT>50.00</TRNAMT>
            <FITID>TX1</FITID>
          </STMTTRN>
        </BANKTRANLIST>
        <LEDGERBAL><BALAMT>50.00</BALAMT><DTASOF>20200131</DTASOF></LEDGERBAL>
        <AVAILBAL><BALAMT>50.00</BALAMT><DTASOF>20200131</DTASOF></AVAILBAL>
      </STMTRS>
    </STMTTRNRS>
  </BANKMSGSRSV1>
</OFX>
`

// bankDocument wraps the content of a STMTRS aggregate into a legacy document.
func bankDocument(stmtrs string) string {
	return legacyHeader + "<OFX>\n" + legacySignOn +
		"<BANKMSGSRSV1><STMTTRNRS><STMTRS>\n" + stmtrs + "\n</STMTRS></STMTTRNRS></BANKMSGSRSV1>\n</OFX>\n"
}

const (
	bankAccount = "<BANKACCTFROM><BANKID>1<BRANCHID>7<ACCTID>42<ACCTTYPE>CHECKING</BANKACCTFROM>\n"
	ledger      = "<LEDGERBAL><BALAMT>10.00<DTASOF>20200131</LEDGERBAL>\n"
)

// bankTransaction wraps the content of a STMTTRN aggregate into a legacy document.
func bankTransaction(stmttrn string) string {
	return bankDocument("<CURDEF>USD\n" + bankAccount +
		"<BANKTRANLIST><DTSTART>20200101<DTEND>20200131\n<STMTTRN>" + stmttrn + "</STMTTRN>\n</BANKTRANLIST>\n" + ledger)
}
