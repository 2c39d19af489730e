// Package catalog holds the fixed storefront vocabulary: the Thai to
// English category table, the keyword trigger sets, the quick-reply
// menus and every canned reply string. Everything here is read-only
// after package init.
package catalog

import "strings"

// Option is a single quick-reply choice. Selecting it resends Text as
// the next inbound message.
type Option struct {
	Label string
	Text  string
}

// Menu is a prompt with its quick-reply option set.
type Menu struct {
	Prompt  string
	Options []Option
}

// SaleToken matches exactly, including case.
const SaleToken = "Sale!!"

const (
	MainMenuPrompt      = "เลือกหมวดหมู่ที่คุณสนใจ"
	NoSaleMessage       = "ยังไม่มีรุ่นไหนลดราคา"
	GreetingGuidance    = "เลือกหมวดหมู่ หรือ รุ่นที่สนใจ หรือ พิมพ์ แนะนำ เพื่อดูสินค้าขายดีได้ครับ"
	ProductsGuidance    = "นี่คือสินค้าที่คุณสนใจ สามารถกดดูสินค้า หรือเลือกดูสินค้าอื่นๆต่อไปได้ครับ"
	BestSellerCaption   = "นี่คือสินค้าที่แนะนำ"
	BestSellerAltText   = "Best Selling Products"
	ProductListAltText  = "แสดงสินค้าสำหรับ"
	SearchNotFound      = "ไม่พบสินค้าตามที่ค้นหา."
	BestSellersNotFound = "ไม่พบสินค้าที่แนะนำ."
	FaqAnswerNotFound   = "ขออภัย ไม่พบคำตอบสำหรับคำถามนี้"
	ViewProductLabel    = "ดูสินค้า"
	CardButtonColor     = "#905c44"

	FaqListText = "คำถามทั่วไป\n1.ลองสินค้าจริงได้ที่ไหนบ้าง\n2.Mustard Sneakers เป็นแบรนด์ของที่ไหน\n3.รองเท้าทำมาจากวัสดุอะไร\n4.ทำความสะอาดรองเท้าอย่างไร"
)

var categories = map[string]string{
	"เสื้อ":   "Shirts",
	"กระเป๋า": "Tote Bag",
	"ถุงเท้า": "Socks",
	"กางเกง":  "Pants",
	"หมวก":    "Hats",
	"รองเท้า": "Shoe",
}

var menuTriggers = map[string]struct{}{
	"menu":        {},
	"เมนู":        {},
	"main":        {},
	"quick reply": {},
}

var recommendTriggers = map[string]struct{}{
	"ขอคำแนะนำ":    {},
	"แนะนำ":        {},
	"recommend":    {},
	"best selling": {},
}

// MainMenuOptions is the top-level category quick-reply set.
var MainMenuOptions = []Option{
	{Label: "Shoe", Text: "Shoe"},
	{Label: "Collection", Text: "Collection"},
	{Label: "Product", Text: "Product"},
	{Label: "Sale!!", Text: "Sale!!"},
	{Label: "General", Text: "General"},
}

// FaqMenuOptions lets the user pick a numbered question or go back.
var FaqMenuOptions = []Option{
	{Label: "1", Text: "1"},
	{Label: "2", Text: "2"},
	{Label: "3", Text: "3"},
	{Label: "4", Text: "4"},
	{Label: "Back", Text: "menu"},
}

var subMenus = map[string]Menu{
	"Shoe": {
		Prompt: "สนใจรองเท้ารุ่นไหน? หรือพิมพ์ เมนู เพิ่อกลับไปเลือกหมวดหมู่ได้ครับ",
		Options: []Option{
			{Label: "RISE COFFEE", Text: "RISE COFFEE"},
			{Label: "MAISON KEEPS", Text: "MAISON KEEPS"},
			{Label: "GAT", Text: "GAT"},
			{Label: "ASTRO", Text: "ASTRO"},
			{Label: "ALEXIS", Text: "ALEXIS"},
			{Label: "BUMPER", Text: "BUMPER"},
			{Label: "COOPER", Text: "COOPER"},
			{Label: "SLIP ON", Text: "SLIP ON"},
			{Label: "MACC", Text: "MACC"},
			{Label: "HI TOP", Text: "HI TOP"},
		},
	},
	"Collection": {
		Prompt: "สนใจ Collection ไหนครับ? หรือพิมพ์ เมนู เพิ่อกลับไปเลือกหมวดหมู่ได้ครับ",
		Options: []Option{
			{Label: "MAVERICKS", Text: "MAVERICKS"},
			{Label: "ODYSSEE", Text: "ODYSSEE"},
			{Label: "MIDNIGHT SUN", Text: "MIDNIGHT SUN"},
			{Label: "MACC", Text: "MACC"},
		},
	},
	"Product": {
		Prompt: "สนใจอะไรครับ? หรือพิมพ์ เมนู เพิ่อกลับไปเลือกหมวดหมู่ได้ครับ",
		Options: []Option{
			{Label: "Shirts", Text: "Shirts"},
			{Label: "Tote Bag", Text: "Tote Bag"},
			{Label: "Socks", Text: "Socks"},
			{Label: "Pants", Text: "Pants"},
			{Label: "Hats", Text: "Hats"},
		},
	},
	"General": {
		Prompt:  FaqListText,
		Options: FaqMenuOptions,
	},
}

// Translate maps a local category token to its canonical English
// category. Case-sensitive exact match; an unknown token is not an
// error, the caller falls through to the next routing rule.
func Translate(token string) (string, bool) {
	c, ok := categories[token]
	return c, ok
}

// IsMenuTrigger reports whether text (case-insensitive) asks for the
// main menu.
func IsMenuTrigger(text string) bool {
	_, ok := menuTriggers[strings.ToLower(text)]
	return ok
}

// IsRecommendTrigger reports whether text (case-insensitive) asks for
// best sellers.
func IsRecommendTrigger(text string) bool {
	_, ok := recommendTriggers[strings.ToLower(text)]
	return ok
}

// SubMenu returns the quick-reply menu for a top-level label
// (Shoe, Collection, Product, General).
func SubMenu(label string) (Menu, bool) {
	m, ok := subMenus[label]
	return m, ok
}

// IsFaqIndex reports whether text is one of the four numbered FAQ
// tokens.
func IsFaqIndex(text string) bool {
	switch text {
	case "1", "2", "3", "4":
		return true
	}
	return false
}

// ShowingProductsFor is the recorded summary line for a product
// carousel reply.
func ShowingProductsFor(term string) string {
	return ProductListAltText + " " + term
}
