// Package officedoc reads document properties from Office Open XML
// containers (.docx, .xlsx, .pptx). The container is a ZIP archive; the
// Dublin Core properties live in docProps/core.xml and the application
// properties in docProps/app.xml. Document content is never touched.
package officedoc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/metaprobe/model"
)

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata).
type corePropertiesXML struct {
	XMLName   xml.Name `xml:"coreProperties"`
	Creator   string   `xml:"creator"`
	Title     string   `xml:"title"`
	Subject   string   `xml:"subject"`
	LastModBy string   `xml:"lastModifiedBy"`
	Created   string   `xml:"created"`
	Modified  string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
}

// Scrape reads document properties from an OOXML container held in
// memory. A buffer that is not a readable ZIP archive, or one without
// docProps/core.xml, yields an empty section with a warning describing
// the cause; missing individual properties are simply absent.
func Scrape(data []byte) (*model.Section, []string) {
	sec := model.NewSection()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return sec, []string{fmt.Sprintf("opening ZIP archive: %v", err)}
	}

	coreData, err := fileContent(zr, "docProps/core.xml")
	if err != nil {
		return sec, []string{fmt.Sprintf("reading core properties: %v", err)}
	}

	var core corePropertiesXML
	if err := xml.Unmarshal(coreData, &core); err != nil {
		return sec, []string{fmt.Sprintf("parsing core properties: %v", err)}
	}

	setIfPresent(sec, "creator", core.Creator)
	setIfPresent(sec, "title", core.Title)
	setIfPresent(sec, "subject", core.Subject)
	setIfPresent(sec, "last_modified_by", core.LastModBy)
	setIfPresent(sec, "created", core.Created)
	setIfPresent(sec, "modified", core.Modified)

	// app.xml is optional and failure to parse it is not worth a warning.
	if appData, err := fileContent(zr, "docProps/app.xml"); err == nil {
		var app appPropertiesXML
		if xml.Unmarshal(appData, &app) == nil {
			setIfPresent(sec, "application", app.Application)
			setIfPresent(sec, "company", app.Company)
		}
	}

	return sec, nil
}

// fileContent reads one file from the ZIP archive by name.
func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func setIfPresent(sec *model.Section, key, value string) {
	if value != "" {
		sec.Set(key, value)
	}
}
