package model

// MemoryImage is one captioned photo within a memory group
type MemoryImage struct {
	SourceURL string
	Caption   string
}

// Memory is a named group of a user's uploaded images sharing the same
// head title. Read-only to the generation core.
type Memory struct {
	HeadTitle string
	Images    []MemoryImage
}

// GroupMemories builds memory groups from a user's uploaded images in a
// single pass. Group order follows the first appearance of each head title
// in the input; image order within a group follows the input order.
func GroupMemories(images []*UploadedImage) []*Memory {
	byTitle := make(map[string]*Memory)
	groups := make([]*Memory, 0)

	for _, img := range images {
		mem, ok := byTitle[img.HeadTitle]
		if !ok {
			mem = &Memory{HeadTitle: img.HeadTitle}
			byTitle[img.HeadTitle] = mem
			groups = append(groups, mem)
		}
		mem.Images = append(mem.Images, MemoryImage{
			SourceURL: img.SourceURL,
			Caption:   img.Caption,
		})
	}

	return groups
}
