package analytics

import (
	"fmt"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

var testNow = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func record(id int, created time.Time, status domain.TicketStatus) domain.TicketRecord {
	return domain.TicketRecord{
		ID:              fmt.Sprintf("rec-%d", id),
		TicketNumber:    fmt.Sprintf("TKT-%04d", id),
		Title:           fmt.Sprintf("Keluhan %d", id),
		Status:          status,
		Priority:        domain.TicketPriorityMedium,
		UnitID:          "unit-a",
		UnitName:        "Rawat Inap",
		CategoryID:      "cat-a",
		CategoryName:    "Pelayanan",
		PatientTypeID:   "pt-a",
		PatientTypeName: "BPJS",
		CreatedAt:       created,
	}
}
