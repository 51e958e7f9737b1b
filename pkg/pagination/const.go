package pagination

// DefaultQuantity is the page size used when quantity is not given
const DefaultQuantity = 5

// DefaultPosition is the offset used when position is not given
const DefaultPosition = 0
