package badger

const documentPrefix = "doc"

// makeDocumentKey builds "doc:<collection>:<id>".
func makeDocumentKey(collection, id string) []byte {
	prefix := makeCollectionPrefix(collection)
	buf := make([]byte, len(prefix)+len(id))
	offset := copy(buf, prefix)
	copy(buf[offset:], id)
	return buf
}

// makeCollectionPrefix builds "doc:<collection>:" for prefix iteration.
func makeCollectionPrefix(collection string) []byte {
	return []byte(documentPrefix + ":" + collection + ":")
}
