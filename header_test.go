package goofx_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/goofx/v2"
)

var _ = Describe("goofx", func() {
	Describe("InspectHeader()", func() {
		Context("when given a conformant document", func() {
			It("should return the markup unchanged", func() {
				h, err := goofx.InspectHeader(minimalXML)
				Expect(err).To(BeNil())
				Expect(h.Dialect).To(Equal(goofx.Conformant))
				Expect(h.Fields).To(BeNil())
				Expect(h.Body).To(Equal(minimalXML))
			})
			It("should not treat a marker after the first tag as a header", func() {
				h, err := goofx.InspectHeader("<OFX><MEMO>OFXHEADER:100</OFX>")
				Expect(err).To(BeNil())
				Expect(h.Dialect).To(Equal(goofx.Conformant))
			})
		})
		Context("when given a legacy document", func() {
			It("should return the fields and the markup after the header", func() {
				h, err := goofx.InspectHeader(legacyHeader + minimalBody)
				Expect(err).To(BeNil())
				Expect(h.Dialect).To(Equal(goofx.Legacy))
				Expect(h.Body).To(Equal(minimalBody))
				Expect(h.Fields).To(HaveLen(9))
				Expect(h.Fields[2]).To(Equal(goofx.HeaderField{Key: "VERSION", Value: "102"}))
				v, ok := h.Field("NEWFILEUID")
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal("NONE"))
				_, ok = h.Field("MISSING")
				Expect(ok).To(BeFalse())
			})
			It("should accept LF line breaks and blank lines", func() {
				header := strings.ReplaceAll(legacyHeader, "\r\n", "\n\n")
				h, err := goofx.InspectHeader(header + minimalBody)
				Expect(err).To(BeNil())
				Expect(h.Fields).To(HaveLen(9))
			})
			DescribeTable("should accept the single line variant", func(line string) {
				h, err := goofx.InspectHeader(line + "\n" + minimalBody)
				Expect(err).To(BeNil())
				Expect(h.Dialect).To(Equal(goofx.Legacy))
				Expect(h.Fields).To(HaveLen(8))
			},
				Entry("without NEWFILEUID",
					"OFXHEADER:100DATA:OFXSGMLVERSION:102SECURITY:NONEENCODING:USASCIICHARSET:1252COMPRESSION:NONEOLDFILEUID:NONE"),
				Entry("with NEWFILEUID",
					"OFXHEADER:100DATA:OFXSGMLVERSION:102SECURITY:NONEENCODING:USASCIICHARSET:1252COMPRESSION:NONEOLDFILEUID:NONENEWFILEUID:NONE"),
			)
		})
		Context("when given an unsupported legacy header", func() {
			DescribeTable("should return a header error naming the field", func(from, to, errMessage string) {
				h, err := goofx.InspectHeader(strings.Replace(legacyHeader, from, to, 1) + minimalBody)
				Expect(h).To(Equal(goofx.Header{}))
				Expect(errors.Is(err, goofx.ErrHeader)).To(BeTrue())
				Expect(err).To(MatchError(errMessage))
			},
				Entry("DATA", "DATA:OFXSGML", "DATA:OFXXML", `goofx: header error: DATA: unsupported value "OFXXML", OFXSGML required`),
				Entry("VERSION", "VERSION:102", "VERSION:103", `goofx: header error: VERSION: unsupported value "103", 102 required`),
				Entry("SECURITY", "SECURITY:NONE", "SECURITY:TYPE1", `goofx: header error: SECURITY: unsupported value "TYPE1", NONE required`),
				Entry("ENCODING", "ENCODING:USASCII", "ENCODING:UTF-8", `goofx: header error: ENCODING: unsupported value "UTF-8", USASCII required`),
				Entry("CHARSET", "CHARSET:1252", "CHARSET:NONE", `goofx: header error: CHARSET: unsupported value "NONE", 1252 required`),
				Entry("COMPRESSION", "COMPRESSION:NONE", "COMPRESSION:ZIP", `goofx: header error: COMPRESSION: unsupported value "ZIP", NONE required`),
				Entry("OLDFILEUID", "OLDFILEUID:NONE", "OLDFILEUID:1", `goofx: header error: OLDFILEUID: unsupported value "1", NONE required`),
				Entry("field out of order", "DATA:OFXSGML\r\nVERSION:102", "VERSION:102\r\nDATA:OFXSGML",
					`goofx: header error: DATA: expected DATA:OFXSGML, found "VERSION:102"`),
				Entry("missing field", "COMPRESSION:NONE\r\n", "",
					`goofx: header error: COMPRESSION: expected COMPRESSION:NONE, found "OLDFILEUID:NONE"`),
				Entry("space before the colon", "VERSION:102", "VERSION : 102",
					`goofx: header error: VERSION: expected VERSION:102, found "VERSION : 102"`),
				Entry("space after the colon", "VERSION:102", "VERSION: 102",
					`goofx: header error: VERSION: unsupported value " 102", 102 required`),
				Entry("extra field", "NEWFILEUID:NONE\r\n", "NEWFILEUID:NONE\r\nEXTRA:1\r\n",
					`goofx: header error: EXTRA: unexpected header line "EXTRA:1"`),
			)
			It("should reject a malformed single line header", func() {
				_, err := goofx.InspectHeader("OFXHEADER:100DATA:OFXSGMLVERSION:103\n<OFX></OFX>")
				Expect(errors.Is(err, goofx.ErrHeader)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("OFXHEADER"))
			})
		})
	})
	Describe("Dialect", func() {
		It("should name the dialect", func() {
			Expect(goofx.Legacy.String()).To(Equal("legacy"))
			Expect(goofx.Conformant.String()).To(Equal("conformant"))
		})
	})
})
