package model

import "sort"

// VendorPreset is a named group of vendor directories that can be added to a keep-set.
type VendorPreset struct {
	Key         string
	Name        string
	Description string
	Vendors     []string
}

// Census records which vendor directories were found under which category.
type Census struct {
	ByCategory map[string][]string
	AllVendors []string
}

// Categories returns the census category names in sorted order.
func (c Census) Categories() []string {
	names := make([]string, 0, len(c.ByCategory))
	for name := range c.ByCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryCount returns how many categories contain the given vendor.
func (c Census) CategoryCount(vendor string) int {
	count := 0
	for _, vendors := range c.ByCategory {
		for _, v := range vendors {
			if v == vendor {
				count++
				break
			}
		}
	}
	return count
}

// HasVendor reports whether the vendor appears in any category.
func (c Census) HasVendor(vendor string) bool {
	i := sort.SearchStrings(c.AllVendors, vendor)
	return i < len(c.AllVendors) && c.AllVendors[i] == vendor
}
