package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"MoodSpot-App/internal/domain/model"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

// TextGenerator はプロンプトからテキストを生成するバックエンド
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiClient はGemini APIとの通信を担当するクライアント
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiClient は新しいGeminiClientインスタンスを作成
func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	return NewGeminiClientWithBaseURL(apiKey, modelName, DefaultGeminiBaseURL)
}

// NewGeminiClientWithBaseURL は接続先を指定してGeminiClientインスタンスを作成
func NewGeminiClientWithBaseURL(apiKey, modelName, baseURL string) *GeminiClient {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   modelName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GeminiRequest はGemini APIへのリクエスト構造体
type GeminiRequest struct {
	Contents []Content `json:"contents"`
}

// Content はリクエストの内容
type Content struct {
	Parts []Part `json:"parts"`
}

// Part はテキスト部分
type Part struct {
	Text string `json:"text"`
}

// GeminiResponse はGemini APIからのレスポンス構造体
type GeminiResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate は生成された候補
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// PromptFeedback はプロンプトがブロックされた場合の情報
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateContent はGemini APIを使ってコンテンツを生成する（1回だけ呼び出し、リトライしない）
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: APIキーが設定されていません", model.ErrBackendUnavailable)
	}

	req := GeminiRequest{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: prompt},
				},
			},
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: APIリクエストに失敗: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: レスポンスの読み取りに失敗: %v", model.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API呼び出しエラー (status: %d): %s", model.ErrBackendUnavailable, resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("%w: レスポンスのパースに失敗: %v", model.ErrMalformedResponse, err)
	}

	if geminiResp.PromptFeedback != nil && geminiResp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: プロンプトがブロックされました (%s)", model.ErrMalformedResponse, geminiResp.PromptFeedback.BlockReason)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: 有効なレスポンスが生成されませんでした", model.ErrMalformedResponse)
	}

	var text strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
