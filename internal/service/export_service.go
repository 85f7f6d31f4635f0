package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"antrian-truk-be/internal/dto"
	"antrian-truk-be/internal/entity"
	"antrian-truk-be/internal/pkg/apperror"
	"antrian-truk-be/internal/pkg/dateutil"

	"github.com/xuri/excelize/v2"
)

const timestampLayout = "2006-01-02 15:04:05"

type IExportService interface {
	// QueueReport renders the queue entries in the range as an xlsx workbook
	// and returns the suggested filename alongside the file content.
	QueueReport(ctx context.Context, req dto.ExportQueueRequest) (string, []byte, error)
	GateExport(ctx context.Context) (string, []byte, error)
	ParseGateImport(r io.Reader) ([]dto.GateImportRow, error)
	ParseCustomerImport(r io.Reader) ([]string, error)
}

type exportService struct {
	queueService IQueueService
	gateService  IGateService
	now          func() time.Time
}

func NewExportService(queueService IQueueService, gateService IGateService) IExportService {
	return &exportService{
		queueService: queueService,
		gateService:  gateService,
		now:          time.Now,
	}
}

var queueReportHeader = []string{
	"No", "Customer Name", "Driver Name", "No Truck", "No Container",
	"Register Time", "In WH - Time", "Start", "Finish", "Total Waktu",
	"Time Remaining", "Status", "Category",
}

func (s *exportService) QueueReport(ctx context.Context, req dto.ExportQueueRequest) (string, []byte, error) {
	entries, err := s.queueService.ListForExport(ctx, req)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &queueReportHeader); err != nil {
		return "", nil, err
	}

	for i, e := range entries {
		row := []interface{}{
			i + 1,
			customerName(e),
			e.DriverName,
			e.TruckNumber,
			stringOrDash(e.ContainerNumber),
			e.RegisterTime.Format(timestampLayout),
			timeOrDash(e.InWhTime),
			timeOrDash(e.StartTime),
			timeOrDash(e.FinishTime),
			processDuration(e),
			timeRemaining(e, s.now()),
			string(e.Status),
			string(e.Category),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, err
	}

	from := req.DateFrom
	if from == "" {
		from = s.now().Format(dateutil.DateLayout)
	}
	to := req.DateTo
	if to == "" {
		to = s.now().Format(dateutil.DateLayout)
	}
	filename := fmt.Sprintf("antrian_truk_%s_sampai_%s.xlsx", from, to)
	return filename, buf.Bytes(), nil
}

func (s *exportService) GateExport(ctx context.Context) (string, []byte, error) {
	gates, err := s.gateService.List(ctx, dto.ListGateRequest{})
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []string{"No", "Gate", "Area", "Warehouse"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", nil, err
	}
	for i, g := range gates {
		row := []interface{}{i + 1, g.GateNo, g.Area, g.Warehouse}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, err
	}
	filename := fmt.Sprintf("master_gate_%s.xlsx", s.now().Format(dateutil.DateLayout))
	return filename, buf.Bytes(), nil
}

// ParseGateImport reads rows shaped like the gate export: gate number, area
// and warehouse in the first three columns, header on row one.
func (s *exportService) ParseGateImport(r io.Reader) ([]dto.GateImportRow, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	var out []dto.GateImportRow
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		item := dto.GateImportRow{RowNumber: i + 1}
		if len(row) > 0 {
			item.GateNo = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			item.Area = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			item.Warehouse = strings.TrimSpace(row[2])
		}
		if item.GateNo == "" && item.Area == "" && item.Warehouse == "" {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// ParseCustomerImport reads customer names from the first column, header on
// row one.
func (s *exportService) ParseCustomerImport(r io.Reader) ([]string, error) {
	rows, err := readFirstSheet(r)
	if err != nil {
		return nil, err
	}

	var names []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.Validation("File bukan dokumen Excel yang valid")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, apperror.Validation("File bukan dokumen Excel yang valid")
	}
	return rows, nil
}

func customerName(e *entity.QueueEntry) string {
	if e.Customer != nil {
		return e.Customer.Name
	}
	return "-"
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timestampLayout)
}

// timeRemaining reports how much of the entry's SLA budget is left at the
// given instant, "-" when no budget applies or the budget is spent.
func timeRemaining(e *entity.QueueEntry, now time.Time) string {
	budget, anchor, ok := slaBudgetMinutes(e)
	if !ok {
		return "-"
	}
	remaining := budget - dateutil.MinutesBetween(anchor, now)
	if remaining <= 0 {
		return "-"
	}
	return strconv.Itoa(remaining/60) + " jam " + strconv.Itoa(remaining%60) + " menit"
}

func processDuration(e *entity.QueueEntry) string {
	if e.StartTime == nil || e.FinishTime == nil {
		return "-"
	}
	minutes := dateutil.MinutesBetween(*e.StartTime, *e.FinishTime)
	if minutes < 0 {
		return "-"
	}
	return strconv.Itoa(minutes/60) + " jam " + strconv.Itoa(minutes%60) + " menit"
}
