//go:build ocr

// Package ocr recognizes visible text in image files so it can be reported
// as an extra metadata section alongside the decoded tag data.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/metaprobe/model"
)

// Client wraps Tesseract for text recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g. "eng+fra"). Default is
// "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// Recognize runs OCR over image data (PNG, TIFF, JPEG, etc.) and returns
// a section holding the recognized text. An image with no recognizable
// text yields an empty section.
func (c *Client) Recognize(imageData []byte) (*model.Section, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	sec := model.NewSection()
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		sec.Set("text", trimmed)
	}
	return sec, nil
}
