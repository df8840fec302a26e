package contact

import "strings"

// VCardEntry vCard 匯出所需的最小視圖.
type VCardEntry struct {
	Name        string
	PhoneNumber string
}

// VCardContentType vCard 附件的 Content-Type.
const VCardContentType = "text/vcard; charset=utf-8"

// ExportVCard 將全部聯絡人渲染為單一 vCard 3.0 文字檔.
// 每筆記錄一個區塊，依傳入順序（即建立時間順序）輸出.
// 注意：名稱中的特殊字符刻意不做 vCard 轉義，輸出必須與既有部署逐位元相容.
func ExportVCard(entries []VCardEntry, suffix string) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoContacts
	}

	var b strings.Builder
	for _, e := range entries {
		display := e.Name + suffix
		b.WriteString("BEGIN:VCARD\n")
		b.WriteString("VERSION:3.0\n")
		b.WriteString("FN:" + display + "\n")
		b.WriteString("N:" + display + ";;;;\n")
		b.WriteString("TEL;TYPE=CELL:" + e.PhoneNumber + "\n")
		b.WriteString("END:VCARD\n")
		b.WriteString("\n")
	}

	return b.String(), nil
}
