// Package classifier turns news headlines into verdicts using ordered
// keyword tables. All classifiers are pure and total: any string, including
// the empty one, yields a valid verdict.
package classifier

import (
	"market-pulse/rules"
)

// IPOSentiment is the closed set of IPO verdicts.
type IPOSentiment string

const (
	IPOHot     IPOSentiment = "Hot"
	IPOCold    IPOSentiment = "Cold"
	IPONeutral IPOSentiment = "Neutral"
)

// ImpactSentiment is the closed set of macro-impact verdicts.
type ImpactSentiment string

const (
	ImpactPositive ImpactSentiment = "Positive"
	ImpactNegative ImpactSentiment = "Negative"
	ImpactNeutral  ImpactSentiment = "Neutral"
)

// IPOVerdict is the result of ClassifyIPO.
type IPOVerdict struct {
	Sentiment IPOSentiment `json:"sentiment"`
	Tags      []string     `json:"tags"`
	Insight   string       `json:"insight"`
}

// ImpactVerdict is the result of ClassifyImpact.
type ImpactVerdict struct {
	Sentiment ImpactSentiment `json:"sentiment"`
	Region    string          `json:"region"`
	Reason    string          `json:"reason"`
	Sectors   []string        `json:"sectors"`
}

// ThemeName labels the card theme of a general market headline.
type ThemeName string

const (
	ThemeBearish     ThemeName = "Bearish"
	ThemeBullish     ThemeName = "Bullish"
	ThemeBanking     ThemeName = "Banking"
	ThemeTech        ThemeName = "Tech"
	ThemeCommodities ThemeName = "Commodities"
	ThemeAuto        ThemeName = "Auto"
	ThemeGeneral     ThemeName = "General"
)

// Theme is the result of ClassifyTheme.
type Theme struct {
	Name  ThemeName `json:"name"`
	Emoji string    `json:"emoji"`
}

var (
	ipoEngine    = buildIPOEngine()
	impactEngine = buildImpactEngine()
	themeEngine  = buildThemeEngine()
)

// ClassifyIPO tags an IPO headline. Every matching topic adds its tag; the
// last topic whose branch fired decides sentiment and insight.
func ClassifyIPO(title string) IPOVerdict {
	return ipoEngine.Evaluate(title)
}

// ClassifyImpact returns the verdict of the first macro topic that fires,
// or the global default.
func ClassifyImpact(title string) ImpactVerdict {
	return impactEngine.Evaluate(title)
}

// ClassifyTheme picks the card theme of a general market headline.
func ClassifyTheme(title string) Theme {
	return themeEngine.Evaluate(title)
}

func buildIPOEngine() *rules.Engine[IPOVerdict] {
	e := &rules.Engine[IPOVerdict]{
		Policy: rules.AccumulateLastWins,
		Default: func() IPOVerdict {
			return IPOVerdict{Sentiment: IPONeutral, Tags: []string{}, Insight: defaultIPOInsight}
		},
	}
	for _, topic := range ipoDictionary {
		topic := topic
		e.Rules = append(e.Rules, rules.Rule[IPOVerdict]{
			Topic:    topic.Tag,
			Triggers: topic.Triggers,
			Apply: func(text string, v *IPOVerdict) bool {
				v.Tags = append(v.Tags, topic.Tag)
				for _, b := range topic.Branches {
					if b.When != nil && !b.When.In(text) {
						continue
					}
					if b.Sentiment != "" {
						v.Sentiment = b.Sentiment
					}
					v.Insight = b.Insight
					return true
				}
				return false
			},
		})
	}
	return e
}

func buildImpactEngine() *rules.Engine[ImpactVerdict] {
	e := &rules.Engine[ImpactVerdict]{
		Policy:  rules.FirstMatch,
		Default: func() ImpactVerdict { return defaultImpact.clone() },
	}
	for _, topic := range impactDictionary {
		topic := topic
		e.Rules = append(e.Rules, rules.Rule[ImpactVerdict]{
			Topic:    topic.Topic,
			Triggers: topic.Triggers,
			Apply: func(text string, v *ImpactVerdict) bool {
				for _, b := range topic.Branches {
					if b.When != nil && !b.When.In(text) {
						continue
					}
					*v = b.Verdict.clone()
					return true
				}
				return false
			},
		})
	}
	return e
}

func buildThemeEngine() *rules.Engine[Theme] {
	e := &rules.Engine[Theme]{
		Policy:  rules.FirstMatch,
		Default: func() Theme { return defaultTheme },
	}
	for _, entry := range themeDictionary {
		entry := entry
		e.Rules = append(e.Rules, rules.Rule[Theme]{
			Topic:    string(entry.Theme.Name),
			Triggers: entry.Triggers,
			Apply: func(_ string, v *Theme) bool {
				*v = entry.Theme
				return true
			},
		})
	}
	return e
}

// clone copies Sectors so callers never alias the dictionary.
func (v ImpactVerdict) clone() ImpactVerdict {
	v.Sectors = append([]string(nil), v.Sectors...)
	return v
}
