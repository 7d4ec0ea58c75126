package render

import (
	"fmt"
	"time"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var shortMonthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatDate renders t as "15 Oktober 2026"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatDateTime renders t as "15 Okt 2026 14:05"
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d %02d:%02d", t.Day(), shortMonthNames[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatShortDate renders t as "15 Okt 2026"
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonthNames[t.Month()-1], t.Year())
}

// PageLabel renders the footer page marker
func PageLabel(page, total int) string {
	return fmt.Sprintf("Halaman %d dari %d", page, total)
}

func PeriodLabel(p domain.Period) string {
	switch p {
	case domain.PeriodWeek:
		return "7 Hari Terakhir"
	case domain.PeriodQuarter:
		return "Kuartal Ini"
	case domain.PeriodYear:
		return "Tahun Ini"
	default:
		return "Bulan Ini"
	}
}

func StatusLabel(s domain.TicketStatus) string {
	switch s {
	case domain.TicketStatusOpen:
		return "Terbuka"
	case domain.TicketStatusInProgress:
		return "Diproses"
	case domain.TicketStatusEscalated:
		return "Eskalasi"
	case domain.TicketStatusResolved:
		return "Selesai"
	case domain.TicketStatusClosed:
		return "Ditutup"
	default:
		return string(s)
	}
}

func PriorityLabel(p domain.TicketPriority) string {
	switch p {
	case domain.TicketPriorityLow:
		return "Rendah"
	case domain.TicketPriorityMedium:
		return "Sedang"
	case domain.TicketPriorityHigh:
		return "Tinggi"
	case domain.TicketPriorityCritical:
		return "Kritis"
	default:
		return string(p)
	}
}
