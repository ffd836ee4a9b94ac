package services_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luisfelipe-wekan/knowledge-extractor/services"
)

var _ = Describe("Documents", func() {
	var testDir string

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "documents-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	Context("when the folder is empty", func() {
		It("lists no files without an error", func() {
			files, err := services.ListPDFFiles(testDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(BeEmpty())
		})

		It("scans to ErrNoDocuments", func() {
			text, err := services.ScanAllPDFs(testDir)
			Expect(err).To(MatchError(services.ErrNoDocuments))
			Expect(text).To(BeEmpty())
		})
	})

	Context("when the folder does not exist", func() {
		It("lists no files without an error", func() {
			files, err := services.ListPDFFiles(filepath.Join(testDir, "missing"))
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(BeEmpty())
		})
	})

	Context("when the folder holds mixed content", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(testDir, "notes.pdf"), []byte("dummy pdf content"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(testDir, "SLIDES.PDF"), []byte("more dummy content"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(testDir, "readme.txt"), []byte("text file"), 0644)).To(Succeed())

			nested := filepath.Join(testDir, "nested")
			Expect(os.MkdirAll(nested, 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(nested, "deep.pdf"), []byte("nested pdf"), 0644)).To(Succeed())
		})

		It("lists only top-level PDFs, matching extension case-insensitively", func() {
			files, err := services.ListPDFFiles(testDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(HaveLen(2))

			var names []string
			for _, f := range files {
				names = append(names, f.Name)
			}
			Expect(names).To(ConsistOf("notes.pdf", "SLIDES.PDF"))
		})

		It("reports real byte sizes", func() {
			files, err := services.ListPDFFiles(testDir)
			Expect(err).NotTo(HaveOccurred())
			for _, f := range files {
				info, err := os.Stat(filepath.Join(testDir, f.Name))
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Size).To(Equal(info.Size()))
			}
		})
	})

	Context("when every PDF is corrupt", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(testDir, "broken.pdf"), []byte("not a real pdf"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(testDir, "alsobroken.pdf"), []byte{0x00, 0x01}, 0644)).To(Succeed())
		})

		It("skips them all and reports ErrNoDocuments", func() {
			text, err := services.ScanAllPDFs(testDir)
			Expect(err).To(MatchError(services.ErrNoDocuments))
			Expect(text).To(BeEmpty())
		})

		It("still lists them as files", func() {
			files, err := services.ListPDFFiles(testDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(HaveLen(2))
		})
	})
})
