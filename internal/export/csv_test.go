package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/Cracket007/etherscan/internal/export"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CSVWriter", func() {
	var (
		dir    string
		writer *export.CSVWriter

		header []string
		rows   [][]string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		writer = export.NewCSVWriter(dir)

		header = []string{"Date", "From", "To"}
		rows = [][]string{
			{"14/11/2023", "0xa", "0xb"},
			{"15/11/2023", "0xb", "0xa"},
		}
	})

	It("writes the header and rows and returns the file path", func() {
		path, err := writer.Write("report.csv", header, rows)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "report.csv")))

		file, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(3))
		Expect(records[0]).To(Equal(header))
		Expect(records[1]).To(Equal(rows[0]))
		Expect(records[2]).To(Equal(rows[1]))
	})

	It("creates the directory when it does not exist yet", func() {
		writer = export.NewCSVWriter(filepath.Join(dir, "nested", "reports"))

		path, err := writer.Write("report.csv", header, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(BeAnExistingFile())
	})

	It("overwrites an existing file with the same name", func() {
		_, err := writer.Write("report.csv", header, rows)
		Expect(err).NotTo(HaveOccurred())

		path, err := writer.Write("report.csv", header, rows[:1])
		Expect(err).NotTo(HaveOccurred())

		file, err := os.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
	})
})
