package repositories

// CartStore persists the serialized cart blob under a single fixed key with
// whole-blob overwrite semantics. It is the server-side analogue of the
// browser local-storage slot the cart used to live in: no partial updates,
// no schema versioning.
type CartStore interface {
	// Load returns the blob stored under key, with ok=false when nothing
	// has been stored yet.
	Load(key string) (blob []byte, ok bool, err error)
	// Save overwrites the blob stored under key.
	Save(key string, blob []byte) error
}
