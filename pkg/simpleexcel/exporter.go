package simpleexcel

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Types
// =============================================================================

// FormatterFunc converts a raw cell value before it is written.
type FormatterFunc func(interface{}) interface{}

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	template *ReportTemplate
	// data holds data bound to specific section IDs
	data map[string]interface{}
	// extraColumns holds columns appended at runtime to YAML sections
	extraColumns map[string][]ColumnConfig
	formatters   map[string]FormatterFunc
}

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a block of rows in a sheet. Sections are stacked
// vertically with one blank row between them.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Data        interface{}    `yaml:"-"` // Data is bound at runtime
	ShowHeader  bool           `yaml:"show_header"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // Struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	Formatter string  `yaml:"formatter"` // Name registered with RegisterFormatter
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font *FontTemplate `yaml:"font"`
	Fill *FillTemplate `yaml:"fill"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// =============================================================================
// Constructors
// =============================================================================

func newDataExporter() *DataExporter {
	return &DataExporter{
		data:         make(map[string]interface{}),
		extraColumns: make(map[string][]ColumnConfig),
		formatters:   make(map[string]FormatterFunc),
	}
}

// NewDataExporterFromYamlConfig parses an inline YAML report template.
func NewDataExporterFromYamlConfig(config string) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(config), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(tmpl.Sheets) == 0 {
		return nil, fmt.Errorf("report template has no sheets")
	}

	e := newDataExporter()
	e.template = &tmpl
	return e, nil
}

// NewDataExporterFromYamlFile reads a YAML report template from path.
func NewDataExporterFromYamlFile(path string) (*DataExporter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	return NewDataExporterFromYamlConfig(string(data))
}

// =============================================================================
// Fluent API
// =============================================================================

// BindSectionData binds data to a section ID (for YAML-based export).
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// AppendSectionColumns adds columns after the ones declared in YAML for the section ID.
// Use it for columns only known at runtime.
func (e *DataExporter) AppendSectionColumns(id string, cols ...ColumnConfig) *DataExporter {
	e.extraColumns[id] = append(e.extraColumns[id], cols...)
	return e
}

// RegisterFormatter makes fn available to columns by name.
func (e *DataExporter) RegisterFormatter(name string, fn FormatterFunc) *DataExporter {
	e.formatters[name] = fn
	return e
}

// BuildExcel creates the workbook in memory. The caller owns the returned file.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	if e.template == nil || len(e.template.Sheets) == 0 {
		return nil, fmt.Errorf("report template has no sheets")
	}

	f := excelize.NewFile()
	for i, sheetTmpl := range e.template.Sheets {
		if err := addSheet(f, i, sheetTmpl.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sheetTmpl.Name, err)
		}

		sections := make([]*SectionConfig, len(sheetTmpl.Sections))
		for j := range sheetTmpl.Sections {
			sec := sheetTmpl.Sections[j]
			sec.Columns = append(append([]ColumnConfig{}, sec.Columns...), e.extraColumns[sec.ID]...)
			if data, ok := e.data[sec.ID]; ok {
				sec.Data = data
			}
			sections[j] = &sec
		}

		if err := e.renderSections(f, sheetTmpl.Name, sections); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// addSheet renames the default sheet for the first template sheet and
// creates the rest.
func addSheet(f *excelize.File, index int, name string) error {
	if index == 0 {
		return f.SetSheetName("Sheet1", name)
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if idx == -1 {
		_, err = f.NewSheet(name)
	}
	return err
}

// ToWriter writes the Excel file to the provided io.Writer.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// =============================================================================
// Rendering Logic
// =============================================================================

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	row := 1

	for _, sec := range sections {
		if sec.Title != "" {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			endCell := cell
			if len(sec.Columns) > 1 {
				if endCell, err = excelize.CoordinatesToCellName(len(sec.Columns), row); err != nil {
					return err
				}
				if err := f.MergeCell(sheet, cell, endCell); err != nil {
					return err
				}
			}
			if err := applyStyle(f, sheet, cell, endCell, sec.TitleStyle); err != nil {
				return err
			}
			row++
		}

		if sec.ShowHeader && len(sec.Columns) > 0 {
			for i, col := range sec.Columns {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
					return err
				}
				if col.Width > 0 {
					colName, err := excelize.ColumnNumberToName(i + 1)
					if err != nil {
						return err
					}
					if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
						return err
					}
				}
			}
			first, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			last, err := excelize.CoordinatesToCellName(len(sec.Columns), row)
			if err != nil {
				return err
			}
			if err := applyStyle(f, sheet, first, last, sec.HeaderStyle); err != nil {
				return err
			}
			row++
		}

		dataVal := reflect.ValueOf(sec.Data)
		if dataVal.Kind() == reflect.Slice {
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					val := extractValue(item, col.FieldName)
					if fn, ok := e.formatters[col.Formatter]; ok && val != nil {
						val = fn(val)
					}
					if val == nil {
						continue
					}
					cell, err := excelize.CoordinatesToCellName(j+1, row)
					if err != nil {
						return err
					}
					if err := f.SetCellValue(sheet, cell, val); err != nil {
						return fmt.Errorf("error writing row %d: %w", i+1, err)
					}
				}
				row++
			}
		}

		// Add spacing between sections
		row++
	}

	return nil
}

// extractValue reads fieldName from a struct or a string-keyed map. Missing
// fields and keys yield nil, which leaves the cell blank.
func extractValue(item reflect.Value, fieldName string) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return nil
		}
		item = item.Elem()
	}

	switch item.Kind() {
	case reflect.Struct:
		f := item.FieldByName(fieldName)
		if f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
	case reflect.Map:
		if item.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := item.MapIndex(reflect.ValueOf(fieldName).Convert(item.Type().Key()))
		if v.IsValid() {
			return v.Interface()
		}
	}
	return nil
}

func applyStyle(f *excelize.File, sheet, from, to string, tmpl *StyleTemplate) error {
	if tmpl == nil {
		return nil
	}
	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	styleID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, styleID)
}
