package constants

import "strings"

// DocumentExtension is the only extension the watcher accepts (lowercase, without '.').
const DocumentExtension = "pdf"

// ReviewFolderName is the quarantine subfolder created under the watched root.
const ReviewFolderName = "Review"

// ReviewBasePrefix sorts quarantined files ahead of every dated file.
const ReviewBasePrefix = "0000-00-00_Review_"

// MaxFilenameLength caps the composed base name (date + subject), measured in runes.
const MaxFilenameLength = 70

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// HasDocumentExt reports whether path ends in the document extension, case-insensitively.
func HasDocumentExt(path string) bool {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return false
	}
	return NormalizeExt(path[i:]) == DocumentExtension
}
