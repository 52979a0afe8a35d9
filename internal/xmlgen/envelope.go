package xmlgen

import (
	"time"

	"mariosat/mifir-mapper/internal/dateutils"
)

// ISO 20022 namespaces of the report envelope.
const (
	nsBizData = "urn:iso:std:iso:20022:tech:xsd:head.003.001.01"
	nsAppHdr  = "urn:iso:std:iso:20022:tech:xsd:head.001.001.01"
	nsAuth016 = "urn:iso:std:iso:20022:tech:xsd:auth.016.001.01"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"

	schemaLocationBizData = nsBizData + " head.003.001.01_ESMAUG_1.0.0.xsd"
	schemaLocationAuth016 = nsAuth016 + " auth.016.001.01_ESMAUG_DATTRA_1.1.0.xsd"

	// MsgDefIdr identifies the payload message definition.
	MsgDefIdr = "auth.016.001.01"
)

// Header carries the values of the business application header. Callers
// supply them explicitly so that generation is deterministic; the cmd layer
// fills in uuid and clock defaults.
type Header struct {
	FromOrgID string
	ToOrgID   string
	BizMsgIdr string
	CreDt     time.Time
}

// envelope builds the BizData document skeleton and returns the
// FinInstrmRptgTxRpt node transaction blocks are appended to.
func envelope(hdr Header) (*node, *node) {
	root := newNode("BizData")
	root.setAttr("xmlns:xsi", nsXSI)
	root.setAttr("xmlns", nsBizData)
	root.setAttr("xsi:schemaLocation", schemaLocationBizData)

	appHdr := root.child("Hdr").child("AppHdr")
	appHdr.setAttr("xmlns", nsAppHdr)
	orgID(appHdr.child("Fr"), hdr.FromOrgID)
	orgID(appHdr.child("To"), hdr.ToOrgID)
	appHdr.child("BizMsgIdr").setText(hdr.BizMsgIdr)
	appHdr.child("MsgDefIdr").setText(MsgDefIdr)
	appHdr.child("CreDt").setText(hdr.CreDt.UTC().Format(dateutils.DateTimeLayoutSeconds))

	doc := root.child("Pyld").child("Document")
	doc.setAttr("xmlns", nsAuth016)
	doc.setAttr("xsi:schemaLocation", schemaLocationAuth016)
	report := doc.child("FinInstrmRptgTxRpt")
	return root, report
}

func orgID(parent *node, id string) {
	parent.child("OrgId").child("Id").child("OrgId").child("Othr").child("Id").setText(id)
}
