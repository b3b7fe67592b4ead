package html

// tagMeta is keyed by lower case local name. basicAttrs are sorted.
var tagMeta = map[string]*TagMeta{
	"a": {
		flags:      Inline,
		basicAttrs: []string{"base", "charset", "dir", "href", "hreflang", "id", "lang", "media", "name", "rel", "rev", "title", "type"},
	},
	"abbr": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"acronym": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"address": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"applet": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"area": {
		flags:      Empty,
		basicAttrs: []string{"alt", "base", "dir", "lang", "media", "title"},
	},
	"article": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"aside": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"audio": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "src", "title"},
	},
	"b": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"base": {
		flags:      Empty | Meta,
		basicAttrs: []string{"base", "href"},
	},
	"basefont": {
		flags:      Empty | Deprecated | Inline | Meta,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"bdi": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"bdo": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"big": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"blink": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"blockquote": {
		flags:      0,
		basicAttrs: []string{"base", "cite", "dir", "lang", "title"},
	},
	"body": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"br": {
		flags:      Empty,
		basicAttrs: []string{"base", "title"},
	},
	"button": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"canvas": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"caption": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"center": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"cite": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"code": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"col": {
		flags:      Empty,
		basicAttrs: []string{"base", "dir", "lang", "span", "title"},
	},
	"colgroup": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "span", "title"},
	},
	"content": {
		flags:      Deprecated | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"data": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title", "value"},
	},
	"datalist": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dd": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"del": {
		flags:      Inline,
		basicAttrs: []string{"base", "cite", "datetime", "dir", "lang", "title"},
	},
	"details": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dfn": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dialog": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dir": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"div": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dl": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"dt": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"em": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"embed": {
		flags:      Empty | Inline,
		basicAttrs: []string{"base", "dir", "height", "lang", "src", "title", "type", "width"},
	},
	"fieldset": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"figcaption": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"figure": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"font": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"footer": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"form": {
		flags:      0,
		basicAttrs: []string{"accept", "accept-charset", "base", "dir", "lang", "title"},
	},
	"frame": {
		flags:      Empty | Deprecated | Banned,
		basicAttrs: []string{"base", "src", "title"},
	},
	"frameset": {
		flags:      Deprecated | Banned,
		basicAttrs: []string{"base", "title"},
	},
	"h1": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"h2": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"h3": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"h4": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"h5": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"h6": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"head": {
		flags:      Meta,
		basicAttrs: []string{"base", "dir", "lang"},
	},
	"header": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"hgroup": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"hr": {
		flags:      Empty,
		basicAttrs: []string{"base", "title"},
	},
	"html": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang"},
	},
	"i": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"iframe": {
		flags:      Inline,
		basicAttrs: []string{"align", "base", "title"},
	},
	"img": {
		flags:      Empty | Inline,
		basicAttrs: []string{"alt", "base", "decoding", "dir", "height", "lang", "src", "title", "width"},
	},
	"input": {
		flags:      Empty | Inline | Banned,
		basicAttrs: []string{"accept", "alt", "base", "dir", "lang", "title"},
	},
	"ins": {
		flags:      Inline,
		basicAttrs: []string{"base", "cite", "datetime", "dir", "lang", "title"},
	},
	"isindex": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"kbd": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"label": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"legend": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"li": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"link": {
		flags:      Empty | Meta,
		basicAttrs: []string{"base", "charset", "dir", "href", "hreflang", "lang", "media", "rel", "rev", "title", "type"},
	},
	"listing": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"main": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"map": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"mark": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"menu": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"menuitem": {
		flags:      Empty | Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"meta": {
		flags:      Empty | Meta,
		basicAttrs: []string{"base", "charset", "content", "dir", "http-equiv", "lang", "scheme"},
	},
	"meter": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"nav": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"nobr": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"noframes": {
		flags:      Deprecated | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"noscript": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"object": {
		flags:      Inline | Banned,
		basicAttrs: []string{"align", "base", "data", "dir", "lang", "title", "type"},
	},
	"ol": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"optgroup": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "label", "lang", "title"},
	},
	"option": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "label", "lang", "title"},
	},
	"output": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"p": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"param": {
		flags:      Empty,
		basicAttrs: []string{"base", "name", "value"},
	},
	"picture": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "height", "lang", "title", "width"},
	},
	"plaintext": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"pre": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"progress": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"q": {
		flags:      Inline,
		basicAttrs: []string{"base", "cite", "dir", "lang", "title"},
	},
	"rb": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"rbc": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"rp": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"rt": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"rtc": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"ruby": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"s": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"samp": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"script": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang"},
	},
	"section": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"select": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"slot": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"small": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"source": {
		flags:      Empty,
		basicAttrs: []string{"base", "dir", "lang", "src", "title", "type"},
	},
	"span": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"strike": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"strong": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"style": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "lang"},
	},
	"sub": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"summary": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"sup": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"svg": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "height", "lang", "title", "width"},
	},
	"table": {
		flags:      0,
		basicAttrs: []string{"align", "base", "dir", "lang", "summary", "title"},
	},
	"tbody": {
		flags:      0,
		basicAttrs: []string{"align", "base", "dir", "lang", "title"},
	},
	"td": {
		flags:      0,
		basicAttrs: []string{"align", "base", "char", "charoff", "colspan", "dir", "headers", "lang", "rowspan", "scope", "title"},
	},
	"template": {
		flags:      Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"textarea": {
		flags:      Inline | Banned,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"tfoot": {
		flags:      0,
		basicAttrs: []string{"align", "base", "dir", "lang", "title"},
	},
	"th": {
		flags:      0,
		basicAttrs: []string{"abbr", "align", "axis", "base", "char", "charoff", "colspan", "dir", "lang", "rowspan", "scope", "title"},
	},
	"thead": {
		flags:      0,
		basicAttrs: []string{"align", "base", "dir", "lang", "title"},
	},
	"time": {
		flags:      Inline,
		basicAttrs: []string{"base", "datetime", "dir", "lang", "title"},
	},
	"title": {
		flags:      Meta,
		basicAttrs: []string{"base", "dir", "lang"},
	},
	"tr": {
		flags:      0,
		basicAttrs: []string{"abbr", "align", "axis", "base", "char", "charoff", "colspan", "dir", "headers", "lang", "rowspan", "scope", "title"},
	},
	"tt": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"u": {
		flags:      Deprecated | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"ul": {
		flags:      0,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"var": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"video": {
		flags:      Inline,
		basicAttrs: []string{"base", "dir", "height", "lang", "title", "width"},
	},
	"wbr": {
		flags:      Empty | Inline,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
	"xmp": {
		flags:      Deprecated,
		basicAttrs: []string{"base", "dir", "lang", "title"},
	},
}
