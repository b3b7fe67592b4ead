package node

const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// QualName is a namespace qualified element name. Prefix is only kept
// for serialization; two names are the same element name when NS and
// Local match.
type QualName struct {
	NS     string
	Prefix string
	Local  string
}

// HTMLName returns the name of the HTML element local.
func HTMLName(local string) QualName {
	return QualName{NS: NamespaceHTML, Local: local}
}

// IsHTML reports whether the name lives in the HTML namespace. Names
// without a namespace are treated as HTML.
func (q QualName) IsHTML() bool {
	return q.NS == NamespaceHTML || q.NS == ""
}

// Matches compares namespace and local name, ignoring the prefix.
func (q QualName) Matches(other QualName) bool {
	return q.NS == other.NS && q.Local == other.Local
}

func (q QualName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}
