package model

import "strings"

// MoodCategory はフォールバックや提案内容を切り替えるための気分カテゴリ
type MoodCategory string

const (
	MoodHappy     MoodCategory = "happy"
	MoodDisturbed MoodCategory = "disturbed"
	MoodSad       MoodCategory = "sad"
	MoodUnwell    MoodCategory = "unwell"
	MoodNeutral   MoodCategory = "neutral"
)

// moodKeywordRule はカテゴリとそれに対応するキーワードの組
type moodKeywordRule struct {
	category MoodCategory
	keywords []string
}

// moodKeywordRules は判定順序つきのキーワード表（先にマッチしたものが優先）
var moodKeywordRules = []moodKeywordRule{
	{category: MoodHappy, keywords: []string{"happy", "joy"}},
	{category: MoodDisturbed, keywords: []string{"disturbed", "confused", "stressed"}},
	{category: MoodSad, keywords: []string{"sad", "low", "demotivated"}},
	{category: MoodUnwell, keywords: []string{"ill", "sick", "unwell"}},
}

// ClassifyMood は自由入力の気分ラベルをカテゴリに分類する
// どのキーワードにも一致しない場合はMoodNeutralを返す
func ClassifyMood(label string) MoodCategory {
	lower := strings.ToLower(label)
	for _, rule := range moodKeywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return MoodNeutral
}

// GetAllMoodCategories は全カテゴリの一覧を取得する
func GetAllMoodCategories() []MoodCategory {
	return []MoodCategory{
		MoodHappy,
		MoodDisturbed,
		MoodSad,
		MoodUnwell,
		MoodNeutral,
	}
}

// MoodPreset はクライアントが選択肢として表示する気分
type MoodPreset struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Category    MoodCategory `json:"category"`
}

// GetMoodPresets は選択可能な気分の一覧を取得する
func GetMoodPresets() []MoodPreset {
	presets := []MoodPreset{
		{ID: "happy", Label: "Happy", Description: "Feeling joyful and energetic"},
		{ID: "disturbed", Label: "Confused", Description: "Feeling stressed or uncertain"},
		{ID: "sad", Label: "Sad", Description: "Feeling down or low energy"},
		{ID: "ill", Label: "Unwell", Description: "Feeling sick or tired"},
		{ID: "neutral", Label: "Neutral", Description: "Feeling calm and balanced"},
	}
	for i := range presets {
		presets[i].Category = ClassifyMood(presets[i].Label)
	}
	return presets
}
