// ocr.go
//
// Roadmap and user feedback management service
// Copyright (c) 2026 the roadmap-feedback authors
//
// This file is part of roadmap-feedback.
// roadmap-feedback is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roadmap-feedback is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roadmap-feedback.
// If not, see <https://www.gnu.org/licenses/>.

// Package ai proxies screenshot OCR to a vision model so feedback entered
// from screenshots does not have to be retyped.
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/030106mia/Roadmap-Feedback/internal/config"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const ocrPrompt = "Extract all text from this image. Return only the extracted text, " +
	"preserving line breaks. If the image contains no text, return an empty string."

// OCRClient extracts text from screenshots via the Anthropic API.
type OCRClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewOCRClient builds an OCR client, or returns nil when no API key is
// configured. Callers must treat a nil client as feature-disabled.
func NewOCRClient(cfg *config.Config) *OCRClient {
	if cfg.AnthropicAPIKey == "" {
		return nil
	}
	return &OCRClient{
		client: anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:  anthropic.Model(cfg.OCRModel),
	}
}

// ExtractText runs OCR over one image and returns the extracted text.
func (o *OCRClient) ExtractText(ctx context.Context, data []byte, contentType string) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(data)

	message, err := o.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     o.model,
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(contentType, encoded),
				anthropic.NewTextBlock(ocrPrompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("unexpected response format: no content blocks")
	}
	content := message.Content[0]
	if content.Type != "text" {
		return "", fmt.Errorf("unexpected response format: not a text block (type=%s)", content.Type)
	}
	return strings.TrimSpace(content.Text), nil
}
