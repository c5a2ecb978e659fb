package eventmeta

// Vocabulary holds the marker words recognised in event descriptions.
// Matching is case-insensitive.
type Vocabulary struct {
	DispositionLabel  string // "Disposisi"
	SavedAtLabel      string // "Disimpan pada"
	ActivityIDLabel   string // "ID Kegiatan"
	AttachmentKeyword string // link text marking an attachment anchor
	StorageHost       string // URL token marking an attachment anchor
}

// DefaultVocabulary returns the markers written by the scheduling UI.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		DispositionLabel:  "Disposisi",
		SavedAtLabel:      "Disimpan pada",
		ActivityIDLabel:   "ID Kegiatan",
		AttachmentKeyword: "Lampiran Undangan",
		StorageHost:       "drive.google.com",
	}
}

// Annotations is what Parse recovers from a raw description.
// Nil pointers mean the annotation is absent.
type Annotations struct {
	Disposition *string
	SavedAtText *string
	ActivityID  *string
	CleanedBody string
}
