package services

// SeedEntry is one row of the built-in vocabulary dataset.
type SeedEntry struct {
	Chinese    string
	Pinyin     string
	Vietnamese string
	Categories []string
}

var seedCards = []SeedEntry{
	{Chinese: "你好", Pinyin: "nǐ hǎo", Vietnamese: "Xin chào", Categories: []string{"Greetings"}},
	{Chinese: "谢谢", Pinyin: "xiè xie", Vietnamese: "Cảm ơn", Categories: []string{"Greetings", "Common"}},
	{Chinese: "再见", Pinyin: "zài jiàn", Vietnamese: "Tạm biệt", Categories: []string{"Greetings"}},
	{Chinese: "是的", Pinyin: "shì de", Vietnamese: "Đúng / Vâng", Categories: []string{"Common"}},
	{Chinese: "不是", Pinyin: "bù shì", Vietnamese: "Không", Categories: []string{"Common"}},
	{Chinese: "请", Pinyin: "qǐng", Vietnamese: "Xin / Làm ơn", Categories: []string{"Common"}},
	{Chinese: "对不起", Pinyin: "duì bu qǐ", Vietnamese: "Xin lỗi", Categories: []string{"Common"}},
	{Chinese: "水", Pinyin: "shuǐ", Vietnamese: "Nước", Categories: []string{"Food & Drink"}},
	{Chinese: "饭", Pinyin: "fàn", Vietnamese: "Cơm", Categories: []string{"Food & Drink"}},
	{Chinese: "茶", Pinyin: "chá", Vietnamese: "Trà", Categories: []string{"Food & Drink"}},
	{Chinese: "一", Pinyin: "yī", Vietnamese: "Một", Categories: []string{"Numbers"}},
	{Chinese: "二", Pinyin: "èr", Vietnamese: "Hai", Categories: []string{"Numbers"}},
	{Chinese: "三", Pinyin: "sān", Vietnamese: "Ba", Categories: []string{"Numbers"}},
	{Chinese: "四", Pinyin: "sì", Vietnamese: "Bốn", Categories: []string{"Numbers"}},
	{Chinese: "五", Pinyin: "wǔ", Vietnamese: "Năm", Categories: []string{"Numbers"}},
}
