package constants

// 订单状态常量
const (
	OrderStatusCompleted = "Completed"
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusCancelled = "Cancelled"
	OrderStatusReturned  = "Returned"
)

// 支付方式常量
const (
	PaymentMethodCreditCard = "Credit Card"
	PaymentMethodDebitCard  = "Debit Card"
	PaymentMethodPaypal     = "PayPal"
	PaymentMethodApplePay   = "Apple Pay"
	PaymentMethodGooglePay  = "Google Pay"
)

// 投放渠道常量
const (
	ChannelGoogleAds = "Google Ads"
	ChannelFacebook  = "Facebook"
	ChannelInstagram = "Instagram"
	ChannelEmail     = "Email"
	ChannelYoutube   = "YouTube"
	ChannelTiktok    = "TikTok"
	ChannelPinterest = "Pinterest"
)

// 性别常量
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// 客户行为分层常量
const (
	SegmentHighValue   = "high_value"
	SegmentMediumValue = "medium_value"
	SegmentLowValue    = "low_value"
)

// 默认国家
const CountryUSA = "USA"
