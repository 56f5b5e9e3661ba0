package wiring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"coverdash/internal/config"
	"coverdash/internal/store"
	"coverdash/internal/testrail"
)

var _ = ginkgo.Describe("Run", func() {
	ginkgo.It("fetches cases, stores a snapshot, and writes the workbook", func() {
		cases := []testrail.RawCase{
			{
				"custom_automation_status": 3,
				"custom_epic_reference":    "Checkout",
				"custom_device":            1,
				"multi_countries":          []any{3, 9},
				"priority_id":              4,
			},
			{
				"custom_automation_status":             1,
				"custom_case_automation_status_testim": 3,
				"custom_epic_reference":                "Checkout",
				"custom_device":                        2,
			},
			{
				"custom_automation_status": 2,
				"custom_epic_reference":    "Login",
			},
			{
				"custom_automation_status": 4,
			},
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gomega.Expect(r.URL.RawQuery).To(gomega.ContainSubstring("limit="))
			w.Header().Set("Content-Type", "application/json")
			gomega.Expect(json.NewEncoder(w).Encode(cases)).To(gomega.Succeed())
		}))
		defer srv.Close()

		client, err := testrail.New(srv.URL, "qa@example.com", "key")
		gomega.Expect(err).To(gomega.Succeed())

		snaps := store.NewMemStore()
		workbookPath := filepath.Join(ginkgo.GinkgoT().TempDir(), "coverage.xlsx")

		err = Run(context.Background(), client, snaps, config.Default(), "Marionnaud", workbookPath)
		gomega.Expect(err).To(gomega.Succeed())

		snap, err := snaps.Get("Marionnaud")
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(snap).NotTo(gomega.BeNil())
		gomega.Expect(snap.Cases).To(gomega.HaveLen(4))
		gomega.Expect(snap.ProjectID).To(gomega.Equal(3))
		gomega.Expect(snap.SuiteID).To(gomega.Equal(30784))

		wb, err := excelize.OpenFile(workbookPath)
		gomega.Expect(err).To(gomega.Succeed())
		defer wb.Close()

		unit, err := wb.GetCellValue("Summary", "B2")
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(unit).To(gomega.Equal("Marionnaud"))

		epics, err := wb.GetRows("Epic Coverage")
		gomega.Expect(err).To(gomega.Succeed())
		// Header plus Checkout, Login and the defaulted epic.
		gomega.Expect(epics).To(gomega.HaveLen(4))
	})

	ginkgo.It("fails for an unknown business unit", func() {
		client, err := testrail.New("http://localhost:1", "qa@example.com", "key")
		gomega.Expect(err).To(gomega.Succeed())

		err = Run(context.Background(), client, store.NewMemStore(), config.Default(), "Nope", "unused.xlsx")
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
