package circuit

// SetOwnerForTest overwrites the owner of p without touching member lists,
// letting tests break the partition on purpose.
func (f *Forest) SetOwnerForTest(p, id int) { f.owner[p] = id }
