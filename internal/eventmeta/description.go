package eventmeta

import (
	"regexp"
	"strings"
)

// Parser extracts annotations from event descriptions. It is safe for concurrent use.
type Parser struct {
	vocab Vocabulary

	savedAtBlock *regexp.Regexp
	savedAtStamp *regexp.Regexp
	disposition  *regexp.Regexp
	activityID   *regexp.Regexp
	anchor       *regexp.Regexp
}

// NewParser compiles the patterns for v. Empty vocabulary fields take their default.
func NewParser(v Vocabulary) *Parser {
	def := DefaultVocabulary()
	if v.DispositionLabel == "" {
		v.DispositionLabel = def.DispositionLabel
	}
	if v.SavedAtLabel == "" {
		v.SavedAtLabel = def.SavedAtLabel
	}
	if v.ActivityIDLabel == "" {
		v.ActivityIDLabel = def.ActivityIDLabel
	}
	if v.AttachmentKeyword == "" {
		v.AttachmentKeyword = def.AttachmentKeyword
	}
	if v.StorageHost == "" {
		v.StorageHost = def.StorageHost
	}

	q := regexp.QuoteMeta
	return &Parser{
		vocab: v,
		savedAtBlock: regexp.MustCompile(`(?is)(?:^|` + lineBreak + `)[ \t]*(?:<[^>]*>[ \t]*)*(?:` + emoji + `[ \t]*)?` +
			q(v.SavedAtLabel) + `[ \t]*:(.*)$`),
		savedAtStamp: regexp.MustCompile(`(?i)(?:` + lineBreak + `)?[ \t]*(?:<[^>]*>[ \t]*)*📅\x{FE0F}?[ \t]*` +
			`(\d{1,2}/\d{1,2}/\d{4},[ \t\x{00A0}\x{202F}]*\d{1,2}:\d{2}:\d{2}[ \t\x{00A0}\x{202F}]*[AP]M)` +
			`(?:[ \t]*</[^>]+>)*\s*$`),
		// matched against bareLine, so markers may be wrapped in tags or led by a pin
		disposition: regexp.MustCompile(`(?i)^` + q(v.DispositionLabel) + `[ \t]*:(.*)$`),
		activityID:  regexp.MustCompile(`(?i)^` + q(v.ActivityIDLabel) + `[ \t]*:(.*)$`),
		anchor:      regexp.MustCompile(`(?is)<a\b[^>]*?\bhref\s*=\s*(?:"([^"]*)"|'([^']*)')[^>]*>(.*?)</a\s*>`),
	}
}

// Vocabulary returns the markers the parser was built with.
func (p *Parser) Vocabulary() Vocabulary {
	return p.vocab
}

// parseState is threaded through the stages. text is the working copy of the
// description; each stage may shorten it or fill annotations.
type parseState struct {
	text string
	ann  Annotations
}

type stage func(*Parser, parseState) parseState

// stages run in order. Saved-at stripping must precede extraction so a value
// written after the saved-at marker is never read as a disposition.
var stages = []stage{
	(*Parser).stripSavedAtBlock,
	(*Parser).stripSavedAtStamp,
	(*Parser).extractDisposition,
	(*Parser).extractActivityID,
	(*Parser).cleanBody,
}

// Parse extracts the disposition, saved-at text and activity id from raw and
// returns the body without metadata lines. Any input is accepted.
func (p *Parser) Parse(raw string) Annotations {
	st := parseState{text: raw}
	for _, s := range stages {
		st = s(p, st)
	}
	return st.ann
}

// stripSavedAtBlock removes everything from a line starting with the saved-at
// label to the end of the text, along with the line break before it.
func (p *Parser) stripSavedAtBlock(st parseState) parseState {
	loc := p.savedAtBlock.FindStringSubmatchIndex(st.text)
	if loc == nil {
		return st
	}
	st.ann.SavedAtText = annotationValue(st.text[loc[2]:loc[3]])
	st.text = st.text[:loc[0]]
	return st
}

// stripSavedAtStamp removes a trailing "📅 D/M/YYYY, H:MM:SS AM" stamp.
func (p *Parser) stripSavedAtStamp(st parseState) parseState {
	loc := p.savedAtStamp.FindStringSubmatchIndex(st.text)
	if loc == nil {
		return st
	}
	if st.ann.SavedAtText == nil {
		st.ann.SavedAtText = annotationValue(st.text[loc[2]:loc[3]])
	}
	st.text = st.text[:loc[0]]
	return st
}

// extractDisposition reads the first line beginning with "Disposisi:". The text
// is left untouched; cleanBody drops the line.
func (p *Parser) extractDisposition(st parseState) parseState {
	st.ann.Disposition = lineAnnotation(p.disposition, st.text)
	return st
}

func (p *Parser) extractActivityID(st parseState) parseState {
	st.ann.ActivityID = lineAnnotation(p.activityID, st.text)
	return st
}

// lineAnnotation returns the value of the first line of text whose plain view
// matches re.
func lineAnnotation(re *regexp.Regexp, text string) *string {
	for _, line := range splitLines(text) {
		if m := re.FindStringSubmatch(bareLine(line)); m != nil {
			return presentValue(m[1])
		}
	}
	return nil
}

// cleanBody drops marker and attachment lines and blank lines, and joins the
// rest with "\n".
func (p *Parser) cleanBody(st parseState) parseState {
	var kept []string
	for _, line := range splitLines(st.text) {
		plain := strings.TrimSpace(plainText(line))
		if plain == "" || p.isMarkerLine(plain) || p.isAttachmentLine(line, plain) {
			continue
		}
		kept = append(kept, strings.TrimSpace(line))
	}
	st.ann.CleanedBody = strings.Join(kept, "\n")
	return st
}

func (p *Parser) isMarkerLine(plain string) bool {
	bare := leadEmojiRe.ReplaceAllString(plain, "")
	return p.disposition.MatchString(bare) || p.activityID.MatchString(bare)
}

// isAttachmentLine reports whether a line only carries attachment links:
// it starts with the attachment keyword, or nothing but punctuation is left
// once its attachment anchors are removed.
func (p *Parser) isAttachmentLine(line, plain string) bool {
	bare := leadEmojiRe.ReplaceAllString(plain, "")
	if strings.HasPrefix(strings.ToLower(bare), strings.ToLower(p.vocab.AttachmentKeyword)) {
		return true
	}

	found := false
	rest := p.anchor.ReplaceAllStringFunc(line, func(a string) string {
		m := p.anchor.FindStringSubmatch(a)
		if _, ok := p.attachmentFromAnchor(m); ok {
			found = true
			return ""
		}
		return a
	})
	if !found {
		return false
	}
	rest = leadEmojiRe.ReplaceAllString(strings.TrimSpace(plainText(rest)), "")
	return strings.Trim(rest, " \t:-–•,") == ""
}
