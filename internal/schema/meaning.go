package schema

import "strings"

var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"biz": "business", "pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "file": "file", "path": "path", "url": "url",
	"ip": "ip", "zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"doc": "document", "usr": "user", "emp": "employee",
	"dept": "department", "grp": "group", "cat": "category",
	"loc": "location", "lat": "latitude", "lng": "longitude", "lon": "longitude",
	"geo": "geometry", "st": "street", "prov": "province", "dist": "district",
	"bal": "balance", "calc": "calculation", "rst": "result", "rslt": "result",
	"std": "standard", "avg": "average", "mid": "id", "uid": "id", "pid": "id",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yesno", "stat": "status", "sts": "status",
	"typ": "type", "kind": "kind", "val": "value",
	"ord": "order", "seq": "sequence", "idx": "index",
	"bg": "background", "fg": "foreground",
	"brd": "board", "art": "article", "auth": "authority",
	"is": "yesno", "use": "yesno", "flg": "flag",
}

// AnalyzeMeaning guesses what a column holds so fixture values can be
// realistic. Comments win over the column name; the name is decoded
// through the abbreviation table as a fallback.
func AnalyzeMeaning(colName, comment string) string {
	c := strings.ToLower(comment)
	n := strings.ToLower(colName)

	// 1. Priority based on comment keywords
	if strings.Contains(c, "mobile") || strings.Contains(c, "phone") {
		return "phone"
	}
	if strings.Contains(c, "email") || strings.Contains(c, "mail") {
		return "email"
	}
	if strings.Contains(c, "address") {
		return "address"
	}
	if strings.Contains(c, "zip") || strings.Contains(c, "postal") {
		return "zipcode"
	}
	if strings.Contains(c, "name") {
		return "name"
	}
	if strings.Contains(c, "password") {
		return "password"
	}
	if strings.Contains(c, "title") || strings.Contains(c, "subject") {
		return "title"
	}
	if strings.Contains(c, "description") || strings.Contains(c, "content") {
		return "description"
	}
	if strings.Contains(c, "date") || strings.Contains(c, "time") {
		return "date"
	}
	if strings.Contains(c, "price") || strings.Contains(c, "cost") || strings.Contains(c, "amount") {
		return "price"
	}
	if strings.Contains(c, "count") || strings.Contains(c, "qty") || strings.Contains(c, "quantity") {
		return "count"
	}
	if strings.Contains(c, "flag") || strings.Contains(c, "yn") {
		return "yesno"
	}
	if strings.Contains(c, "country") {
		return "country"
	}
	if strings.Contains(c, "city") {
		return "city"
	}
	if strings.Contains(c, "ip") {
		return "ip"
	}

	// 2. Abbreviation Analysis from Column Name
	parts := strings.Split(n, "_")
	var decodedParts []string
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decodedParts = append(decodedParts, full)
		} else {
			decodedParts = append(decodedParts, part)
		}
	}

	return strings.Join(decodedParts, " ")
}
