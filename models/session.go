package models

// TenantSession is the identity carried by an authenticated admin session.
type TenantSession struct {
	TenantID         uint   `json:"tenantId"`
	TenantName       string `json:"tenantName"`
	AdminEmail       string `json:"adminEmail"`
	SubscriptionPlan string `json:"subscriptionPlan"`
}
