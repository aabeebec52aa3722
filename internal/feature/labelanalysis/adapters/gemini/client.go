// Package gemini はGoogle Gemini APIを使用したラベル読み取りクライアントを提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"google.golang.org/genai"

	"winecellar_backend/internal/feature/labelanalysis/domain"
	"winecellar_backend/internal/feature/labelanalysis/usecase"
	"winecellar_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// defaultTimeout は呼び出し元のcontextに期限がない場合に適用する上限です。
	// ビジョン推論は数十秒かかることがあるため、HTTP既定より長めに取ります。
	defaultTimeout = 60 * time.Second

	// maxOutputTokens は構造化抽出に十分な応答長の上限です。
	maxOutputTokens = 1000

	// temperature は再現性重視の低温設定です。抽出タスクであり生成タスクではないため。
	temperature = 0.1
)

// GeminiLabelReader はGemini APIでワインラベルから構造化テキストを読み取ります。
type GeminiLabelReader struct {
	apiKey  string
	model   string
	limiter ratelimiter.RateLimiterInterface

	// クライアントは最初の呼び出し時に生成します。キー未設定のままプロセスを
	// 起動できるようにし、テストではこの型ごと差し替えます。
	once    sync.Once
	client  *genai.Client
	initErr error
}

// GeminiLabelReaderがLabelReaderを実装していることをコンパイル時に検証します。
var _ usecase.LabelReader = (*GeminiLabelReader)(nil)

// NewGeminiLabelReader はGeminiLabelReaderの新しいインスタンスを生成します。
// modelが空の場合はDefaultModelを使用します。limiterはnil可です。
func NewGeminiLabelReader(apiKey, model string, limiter ratelimiter.RateLimiterInterface) *GeminiLabelReader {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiLabelReader{apiKey: apiKey, model: model, limiter: limiter}
}

// ReadLabel は画像とプロンプトをGeminiへ送り、応答テキストを返します。
// 失敗はすべてdomainパッケージのエラー種別にマップされます。
func (g *GeminiLabelReader) ReadLabel(ctx context.Context, prompt string, imageJPEG []byte) (string, error) {
	// 認証情報がない場合はネットワークに出る前に失敗させる。
	if g.apiKey == "" {
		return "", domain.ErrNotConfigured
	}

	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if g.initErr != nil {
		return "", fmt.Errorf("%w: create gemini client: %v", domain.ErrInference, g.initErr)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	if g.limiter != nil {
		g.limiter.WaitIfNeeded()
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(imageJPEG, "image/jpeg"),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", mapUpstreamError(err)
	}
	return resp.Text(), nil
}

// mapUpstreamError はSDK・ネットワーク由来のエラーをドメインのエラー種別へ写します。
// 呼び出し元がSDKのエラー型に依存しないことを保証する唯一の変換点です。
func mapUpstreamError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", domain.ErrUpstreamThrottled, apiErr.Message)
		case http.StatusServiceUnavailable:
			return fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, apiErr.Message)
		default:
			// メッセージは診断用にラップへ残す。ユーザーへの露出可否は境界層が決める。
			return fmt.Errorf("%w: %s", domain.ErrUpstreamError, apiErr.Message)
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrInference, err)
}
