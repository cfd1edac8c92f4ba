package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 在单词之间的空白处断行
//   - 单个单词超过最大宽度时按字符强制断行
//   - 原文中的换行符保留为空行分隔
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		currentLine := ""
		for _, word := range words {
			testLine := word
			if currentLine != "" {
				testLine = currentLine + " " + word
			}
			if measureTextWidth(testLine, font) <= maxWidth {
				currentLine = testLine
				continue
			}

			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			// 单词本身超宽，按字符拆分
			pieces := breakWord(word, font, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
		}
		lines = append(lines, currentLine)
	}

	return lines
}

// Paragraphs 按空行拆分正文，并把段内换行合并为空格
func Paragraphs(body string) []string {
	var result []string
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		block = strings.Join(strings.Fields(block), " ")
		if block != "" {
			result = append(result, block)
		}
	}
	return result
}

// breakWord 按字符拆分超宽单词，至少返回一段
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		if current != "" && measureTextWidth(current+char, font) > maxWidth {
			pieces = append(pieces, current)
			current = ""
		}
		current += char
		word = word[size:]
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
