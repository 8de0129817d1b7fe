package tickets

import (
	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/vendors"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// ResolveSubmitter finds the account behind t by joining on (userType,
// userId). The bool is false when no such retailer or vendor exists.
func ResolveSubmitter(rs []retailers.Retailer, vs []vendors.Vendor, t Ticket) (accounts.BaseUser, bool) {
	ref := t.Submitter()
	switch ref.Type {
	case enums.UserTypeRetailer:
		for _, r := range rs {
			if r.ID == ref.ID {
				return r.BaseUser, true
			}
		}
	case enums.UserTypeVendor:
		for _, v := range vs {
			if v.ID == ref.ID {
				return v.BaseUser, true
			}
		}
	}
	return accounts.BaseUser{}, false
}
