package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
)

const (
	DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	DefaultUserAgent        = "MoodSpotApp/1.0"
	DefaultGeocodeTimeout   = 8 * time.Second
)

// NominatimGeocoder はOpenStreetMap Nominatimを使用した逆ジオコーディングの実装
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

// NewNominatimGeocoder は新しいジオコーダーを生成する
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultGeocodeTimeout
	}
	return &NominatimGeocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

var _ repository.ReverseGeocoder = (*NominatimGeocoder)(nil)

// DescribeLocation は座標から地名を取得する
// 範囲外の座標や取得失敗時は「緯度, 経度」を小数点以下4桁で返す
func (g *NominatimGeocoder) DescribeLocation(ctx context.Context, location model.Coordinate) string {
	if !location.IsValid() {
		log.Printf("⚠️ 地名の取得をスキップ: %v (%s)", model.ErrOutOfRange, location)
		return location.String()
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	name, err := g.reverse(ctx, location)
	if err != nil {
		log.Printf("⚠️ 地名の取得に失敗、座標を使用: %v", err)
		return location.String()
	}

	log.Printf("🗺️ 地名取得完了: %s", name)
	return name
}

// reverse はNominatimのreverse APIを呼び出して地名を組み立てる
func (g *NominatimGeocoder) reverse(ctx context.Context, location model.Coordinate) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.buildURL(location), nil)
	if err != nil {
		return "", fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: APIリクエストに失敗: %v", model.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: APIからエラーステータスが返されました: %s", model.ErrNetwork, resp.Status)
	}

	var apiResp nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("%w: JSONのパースに失敗: %v", model.ErrMalformedResponse, err)
	}

	if label := apiResp.Address.label(); label != "" {
		return label, nil
	}
	if apiResp.DisplayName != "" {
		return apiResp.DisplayName, nil
	}
	return "", fmt.Errorf("%w: 住所情報が含まれていません", model.ErrMalformedResponse)
}

func (g *NominatimGeocoder) buildURL(location model.Coordinate) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", fmt.Sprintf("%f", location.Latitude))
	params.Set("lon", fmt.Sprintf("%f", location.Longitude))
	params.Set("zoom", "14")
	params.Set("addressdetails", "1")

	return fmt.Sprintf("%s/reverse?%s", g.baseURL, params.Encode())
}

// --- Nominatimのレスポンスをパースするための構造体 ---

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     *nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
	Country       string `json:"country"`
}

// label は地区、市区町村、州・都道府県、国の順に取り出して", "で連結する
func (a *nominatimAddress) label() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, candidates := range [][]string{
		{a.Neighbourhood, a.Suburb},
		{a.City, a.Town, a.Village},
		{a.State},
		{a.Country},
	} {
		if part := firstNonEmpty(candidates...); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
