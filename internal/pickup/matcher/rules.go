package matcher

import "regexp"

// Capture group names every rule must provide.
const (
	groupCode      = "code"
	groupLocation  = "location"
	groupSender    = "sender"
	groupSenderAlt = "sender_alt"
)

// Rule is a named pattern whose capture roles are expressed as named groups.
type Rule struct {
	Name string
	Expr *regexp.Regexp
}

// DefaultRules is ordered most specific first; only the first structural match is used.
var DefaultRules = []Rule{
	{
		// 丰巢 lockers: "【丰巢】...取件码1234，请至南门驿站取件"
		Name: "fengchao",
		Expr: regexp.MustCompile(`(?:【丰巢】|\[丰巢\]).*?取件码\s*(?P<code>\d+).*?至\s*(?P<location>.+?)(?:取件|$)`),
	},
	{
		// Any bracketed sender: "【菜鸟驿站】您的包裹已到XX驿站，请凭6-2-3001取件"
		Name: "generic",
		Expr: regexp.MustCompile(`(?:【(?P<sender>.*?)】|\[(?P<sender_alt>.*?)\]).*?(?:已到|至)\s*(?P<location>.+?)(?:，|。|、|请).*?凭\s*(?P<code>[A-Za-z0-9-]+?)取件`),
	},
}
