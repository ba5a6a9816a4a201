package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
// 导出以 bytes.Buffer 返回，由 Handler 层设置下载响应头后写入 Response
type ExportService interface {
	// ExportWeightRecords 导出称重记录查询结果
	ExportWeightRecords(ctx context.Context, f *dto.WeightRecordFilter) (*bytes.Buffer, string, error)
	// ExportTransGroupByDate 导出按日期/来源汇总报表，三张表各占一个 Sheet
	ExportTransGroupByDate(ctx context.Context, f *dto.StatFilter) (*bytes.Buffer, string, error)
}

type exportService struct {
	weights WeightRecordService
	stats   StatisticsService
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(weights WeightRecordService, stats StatisticsService, logger *zap.Logger) ExportService {
	return &exportService{weights: weights, stats: stats, logger: logger}
}

// sheet 一张工作表的表头与数据行
type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]interface{}
}

var weightRecordHeaders = []string{
	"序号", "车牌号", "车门号", "司机", "所属单位", "称重时间", "毛重", "出场时间", "皮重", "净重",
	"装载率", "地磅站", "司磅员", "垃圾来源", "垃圾类型", "区域", "数据类型", "备注",
}

// ────────────────────── 称重记录 ──────────────────────

func (s *exportService) ExportWeightRecords(ctx context.Context, f *dto.WeightRecordFilter) (*bytes.Buffer, string, error) {
	items, err := s.weights.ListAll(ctx, f)
	if err != nil {
		return nil, "", err
	}

	sh := sheet{name: "称重记录", headers: weightRecordHeaders, rows: make([][]interface{}, 0, len(items))}
	sh.widths = make([]float64, len(sh.headers))
	for i := range sh.widths {
		sh.widths[i] = 14
	}
	sh.widths[5], sh.widths[7] = 20, 20
	for i, it := range items {
		sh.rows = append(sh.rows, []interface{}{
			i + 1, it.VehicleNo, it.VehicleDoorNo, it.DriverName, it.DeptName, it.TimeWeight,
			it.WeightGross, it.TimeLeave, it.WeightTare, it.WeightNet, it.LoadingRate, it.PoundName,
			it.WeightChecker, it.GarbageSourceName, it.GarbageTypeName, it.RegionName, it.DataType, it.Info,
		})
	}

	buf, err := s.write(sh)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("称重记录_%s.xlsx", time.Now().Format("20060102150405")), nil
}

// ────────────────────── 按日期/来源汇总 ──────────────────────

func (s *exportService) ExportTransGroupByDate(ctx context.Context, f *dto.StatFilter) (*bytes.Buffer, string, error) {
	info, err := s.stats.TransGroupByDate(ctx, f)
	if err != nil {
		return nil, "", err
	}

	sumHeaders := []string{"毛重合计", "皮重合计", "净重合计"}
	byDateSource := sheet{
		name:    "按日期和来源",
		headers: append([]string{"日期", "垃圾来源"}, sumHeaders...),
		widths:  []float64{14, 24, 14, 14, 14},
	}
	for _, g := range info.WeightRecordsGroupByDateSource {
		byDateSource.rows = append(byDateSource.rows, []interface{}{g.Date, g.SourceName, g.WeightGrossSum, g.WeightTareSum, g.WeightNetSum})
	}
	byDate := sheet{
		name:    "按日期",
		headers: append([]string{"日期"}, sumHeaders...),
		widths:  []float64{14, 14, 14, 14},
	}
	for _, g := range info.WeightRecordsGroupByDate {
		byDate.rows = append(byDate.rows, []interface{}{g.Date, g.WeightGrossSum, g.WeightTareSum, g.WeightNetSum})
	}
	bySource := sheet{
		name:    "按来源",
		headers: append([]string{"垃圾来源"}, sumHeaders...),
		widths:  []float64{24, 14, 14, 14},
	}
	for _, g := range info.WeightRecordsGroupBySource {
		bySource.rows = append(bySource.rows, []interface{}{g.SourceName, g.WeightGrossSum, g.WeightTareSum, g.WeightNetSum})
	}

	buf, err := s.write(byDateSource, byDate, bySource)
	if err != nil {
		return nil, "", err
	}

	period := f.StartTime + "_" + f.EndTime
	if f.StartTime == "" && f.EndTime == "" {
		period = time.Now().Format("20060102")
	}
	return buf, fmt.Sprintf("清运汇总_%s.xlsx", period), nil
}

// write 生成工作簿，第一张表为活动表
func (s *exportService) write(sheets ...sheet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		s.logger.Error("创建 Excel 样式失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}

	for i, sh := range sheets {
		idx, err := f.NewSheet(sh.name)
		if err != nil {
			s.logger.Error("创建 Sheet 失败", zap.String("sheet", sh.name), zap.Error(err))
			return nil, ErrExportGenerateFail
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}

		for col, w := range sh.widths {
			name := colName(col)
			f.SetColWidth(sh.name, name, name, w)
		}

		// 表头
		for col, h := range sh.headers {
			f.SetCellValue(sh.name, cell(colName(col), 1), h)
		}
		f.SetCellStyle(sh.name, "A1", cell(colName(len(sh.headers)-1), 1), headerStyle)

		// 数据行
		for r, values := range sh.rows {
			for col, v := range values {
				f.SetCellValue(sh.name, cell(colName(col), r+2), v)
			}
		}
	}
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, ErrExportGenerateFail
	}
	return buf, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
