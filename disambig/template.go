package disambig

import (
	"strconv"
	"strings"
)

// Category is the category every generated page is filed under, through the
// disambig template's Cat parameter.
const Category = "兩岸分治後各年中國消歧義"

// Era identifies which of the three page layouts applies to a year.
type Era int

const (
	// PreHandover covers years before the Hong Kong handover: mainland and
	// Taiwan only, Hong Kong and Macau under "see also".
	PreHandover Era = iota
	// PostHongKongHandover covers 1997 and 1998: Hong Kong is part of the
	// PRC branch, Macau is still under "see also".
	PostHongKongHandover
	// PostHandover covers 1999 onwards: all four regions are direct
	// branches.
	PostHandover
)

func (e Era) String() string {
	switch e {
	case PreHandover:
		return "pre-handover"
	case PostHongKongHandover:
		return "post-hk-handover"
	default:
		return "post-handover"
	}
}

// EraOf maps a year to its era.
func EraOf(year int) Era {
	if year < 1997 {
		return PreHandover
	}
	if year < 1999 {
		return PostHongKongHandover
	}
	return PostHandover
}

const yearPlaceholder = "{year}"

const preHandoverFormat = `按[[de facto|實際上]]的[[海峽兩岸關係|兩岸政治情況]]，'''{year}年中國'''的重大事件分述於以下條目：

* {year}年中華人民共和國，即[[{year}年中國大陸]]，{year}年中華人民共和國（不含台港澳）的重大事件；
* {year}年中華民國，即[[{year}年臺灣]]，{year}年臺灣的重大事件。

== 參見 ==

* [[{year}年香港]]，{year}年英屬香港的重大事件。
* [[{year}年澳門]]，{year}年葡屬澳門的重大事件。

{{disambig|Cat=兩岸分治後各年中國消歧義}}`

const postHongKongHandoverFormat = `按[[de facto|實際上]]的[[海峽兩岸關係|兩岸政治情況]]，'''{year}年中國'''的重大事件分述於以下條目：

* {year}年中華人民共和國，按地區分爲——
** [[{year}年中國大陸]]，{year}年中華人民共和國（不含台港澳）的重大事件；
** [[{year}年香港]]，{year}年香港特別行政區的重大事件；
* {year}年中華民國，即[[{year}年臺灣]]，{year}年臺灣的重大事件。

== 參見 ==
* [[{year}年澳門]]，{year}年葡屬澳門的重大事件。

{{disambig|Cat=兩岸分治後各年中國消歧義}}`

const postHandoverFormat = `按[[de facto|實際上]]的[[海峽兩岸關係|兩岸政治情況]]，'''{year}年中國'''的重大事件分述於以下條目：

* {year}年中華人民共和國，按地區分爲——
** [[{year}年中國大陸]]，{year}年中華人民共和國（不含港澳兩個特別行政區及從未實際管轄的臺灣地區）的重大事件；
** [[{year}年香港]]，{year}年香港特別行政區的重大事件；
** [[{year}年澳門]]，{year}年澳門特別行政區的重大事件；
* {year}年中華民國，即[[{year}年臺灣]]，{year}年臺灣的重大事件。

{{disambig|Cat=兩岸分治後各年中國消歧義}}`

// Template returns the unfilled wikitext skeleton for a year's era. The
// skeleton contains "{year}" placeholders.
func Template(year int) string {
	switch EraOf(year) {
	case PreHandover:
		return preHandoverFormat
	case PostHongKongHandover:
		return postHongKongHandoverFormat
	default:
		return postHandoverFormat
	}
}

// Render returns the finished disambiguation page wikitext for a year.
func Render(year int) string {
	return strings.ReplaceAll(Template(year), yearPlaceholder, strconv.Itoa(year))
}

// SubArticles returns the four regional articles a year's page links to.
func SubArticles(year int) []string {
	y := strconv.Itoa(year)
	return []string{
		y + "年中國大陸",
		y + "年香港",
		y + "年澳門",
		y + "年臺灣",
	}
}
